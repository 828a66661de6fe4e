// Package showcase runs the end-to-end demo: resolve the mode, pick the
// matching factory, build one widget of each kind and print them.
package showcase

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/mode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/widget"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Options configures a Showcase. Zero values fall back to the reference
// resolver, plain output and a discarding logger.
type Options struct {
	Resolver mode.Resolver
	// Styler decorates output when non-nil.
	Styler *style.Styler
	Logger *logger.Logger
}

// Showcase renders a theme-consistent pair of widgets.
type Showcase struct {
	resolver mode.Resolver
	styler   *style.Styler
	log      *logger.Logger
}

// New creates a Showcase from opts.
func New(opts Options) *Showcase {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = mode.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Showcase{resolver: resolver, styler: opts.Styler, log: log}
}

// Factory consults the resolver and returns the matching theme factory.
func (s *Showcase) Factory() widget.ThemeFactory {
	factory := widget.ForDarkMode(s.resolver.DarkModeEnabled())
	s.log.WithFields(map[string]any{"theme": factory.Theme().String()}).Debug("theme factory selected")
	return factory
}

// Run writes the button then the text field to w, one per line.
func (s *Showcase) Run(w io.Writer) error {
	factory := s.Factory()
	button := factory.CreateButton()
	field := factory.CreateTextField()

	if err := s.write(w, "button", s.renderButton(button)); err != nil {
		return err
	}
	return s.write(w, "text field", s.renderTextField(field))
}

func (s *Showcase) renderButton(b widget.Button) string {
	if s.styler != nil {
		return s.styler.Button(b)
	}
	return b.Render()
}

func (s *Showcase) renderTextField(f widget.TextField) string {
	if s.styler != nil {
		return s.styler.TextField(f)
	}
	return f.Render()
}

func (s *Showcase) write(w io.Writer, name, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		wrapped := themeerrors.NewOutputError(name, err)
		s.log.Error(wrapped, "render failed")
		return wrapped
	}
	return nil
}
