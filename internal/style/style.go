// Package style decorates rendered widget text with per-theme lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

// Palette holds the colors for one theme.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

var palettes = map[widget.Theme]Palette{
	widget.Light: {
		Foreground: lipgloss.Color("#111827"),
		Background: lipgloss.Color("#f9fafb"),
		Border:     lipgloss.Color("#cbd5e1"),
		Accent:     lipgloss.Color("#3b82f6"),
		Muted:      lipgloss.Color("#64748b"),
	},
	widget.Dark: {
		Foreground: lipgloss.Color("#e5e7eb"),
		Background: lipgloss.Color("#0b1120"),
		Border:     lipgloss.Color("#334155"),
		Accent:     lipgloss.Color("#60a5fa"),
		Muted:      lipgloss.Color("#94a3b8"),
	},
}

// PaletteFor returns theme's palette; unknown themes get the light one.
func PaletteFor(theme widget.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[widget.Light]
}

// Styler builds lipgloss styles bound to a renderer.
type Styler struct {
	renderer *lipgloss.Renderer
}

// New returns a Styler for r, or for the default renderer when r is nil.
func New(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{renderer: r}
}

// ButtonStyle is a bold accent pill with a rounded border.
func (s *Styler) ButtonStyle(theme widget.Theme) lipgloss.Style {
	p := PaletteFor(theme)
	return s.renderer.NewStyle().
		Bold(true).
		Foreground(p.Background).
		Background(p.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2)
}

// TextFieldStyle is a plain box sized for a single input line.
func (s *Styler) TextFieldStyle(theme widget.Theme) lipgloss.Style {
	p := PaletteFor(theme)
	return s.renderer.NewStyle().
		Foreground(p.Foreground).
		Background(p.Background).
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}

// TextStyle is the unboxed foreground used for typed input.
func (s *Styler) TextStyle(theme widget.Theme) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(PaletteFor(theme).Foreground)
}

// HelpStyle renders secondary text.
func (s *Styler) HelpStyle(theme widget.Theme) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(PaletteFor(theme).Muted)
}

// Button decorates b's rendered text.
func (s *Styler) Button(b widget.Button) string {
	return s.ButtonStyle(b.Theme()).Render(b.Render())
}

// TextField decorates f's rendered text.
func (s *Styler) TextField(f widget.TextField) string {
	return s.TextFieldStyle(f.Theme()).Render(f.Render())
}
