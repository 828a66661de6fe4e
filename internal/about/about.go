// Package about renders a markdown overview of the active widget family.
package about

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

const defaultWrap = 80

// Options tunes Render.
type Options struct {
	// Style overrides the glamour style picked from the theme.
	Style string
	// Wrap is the word-wrap width; zero means 80 columns.
	Wrap int
}

// StyleName maps a theme onto a glamour standard style.
func StyleName(theme widget.Theme) string {
	if theme == widget.Dark {
		return "dark"
	}
	return "light"
}

// Markdown describes factory and the widgets it produces.
func Markdown(factory widget.ThemeFactory) string {
	theme := factory.Theme()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s theme\n\n", theme)
	b.WriteString("Every widget is built by a single theme factory, so a button and a text field ")
	b.WriteString("on the same screen always share a theme.\n\n")
	b.WriteString("## Widgets\n\n")
	b.WriteString("| Kind | Output |\n|------|--------|\n")
	fmt.Fprintf(&b, "| Button | `%s` |\n", factory.CreateButton().Render())
	fmt.Fprintf(&b, "| TextField | `%s` |\n\n", factory.CreateTextField().Render())
	b.WriteString("## Choosing a theme\n\n")
	b.WriteString("Sources are consulted in order, first answer wins:\n\n")
	b.WriteString("1. `--theme light|dark`\n")
	b.WriteString("2. `theme:` in the `--config` file\n")
	b.WriteString("3. the terminal background, with `--detect`\n")
	b.WriteString("4. the built-in default, light\n")
	return b.String()
}

// Render produces the overview for factory as terminal-ready text.
func Render(factory widget.ThemeFactory, opts Options) (string, error) {
	styleName := opts.Style
	if styleName == "" {
		styleName = StyleName(factory.Theme())
	}
	wrap := opts.Wrap
	if wrap <= 0 {
		wrap = defaultWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(factory))
	if err != nil {
		return "", fmt.Errorf("render overview: %w", err)
	}
	return out, nil
}
