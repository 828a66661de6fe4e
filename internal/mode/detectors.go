package mode

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

// Conventional priorities for the built-in sources.
const (
	PriorityFlag     = 100
	PriorityConfig   = 50
	PriorityTerminal = 10
)

type explicitDetector struct {
	name     string
	value    string
	priority int
}

// Explicit answers from a user-supplied theme name such as a flag or config
// value. A blank or unrecognized name leaves the decision to later detectors.
func Explicit(name, value string, priority int) Detector {
	return explicitDetector{name: name, value: value, priority: priority}
}

func (d explicitDetector) Name() string  { return d.name }
func (d explicitDetector) Priority() int { return d.priority }

func (d explicitDetector) Detect() (bool, bool) {
	theme, err := widget.ParseTheme(d.value)
	if err != nil {
		return false, false
	}
	return theme == widget.Dark, true
}

type terminalDetector struct {
	out        io.Writer
	priority   int
	isTerminal func(fd int) bool
	background func() bool
}

// Terminal queries the terminal background color, but only when out is a
// terminal. Piped output never triggers the query.
func Terminal(out io.Writer, priority int) Detector {
	return terminalDetector{
		out:        out,
		priority:   priority,
		isTerminal: term.IsTerminal,
		background: lipgloss.HasDarkBackground,
	}
}

func (terminalDetector) Name() string    { return "terminal" }
func (d terminalDetector) Priority() int { return d.priority }

func (d terminalDetector) Detect() (bool, bool) {
	file, ok := d.out.(*os.File)
	if !ok || file == nil {
		return false, false
	}
	if !d.isTerminal(int(file.Fd())) {
		return false, false
	}
	return d.background(), true
}
