package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	light := PaletteFor(widget.Light)
	dark := PaletteFor(widget.Dark)

	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, light.Foreground, dark.Foreground)
	assert.Equal(t, light, PaletteFor(widget.Theme(7)))
}

func TestStylerKeepsRenderedText(t *testing.T) {
	t.Parallel()

	s := New(lipgloss.NewRenderer(&bytes.Buffer{}))

	for _, theme := range widget.Themes() {
		factory := widget.ForTheme(theme)

		button := s.Button(factory.CreateButton())
		field := s.TextField(factory.CreateTextField())

		assert.Contains(t, button, factory.CreateButton().Render())
		assert.Contains(t, field, factory.CreateTextField().Render())
		assert.Len(t, strings.Split(button, "\n"), 3, "bordered button spans three lines")
		assert.Contains(t, button, "╭")
		assert.Contains(t, field, "┌")
	}
}

func TestNewWithNilRenderer(t *testing.T) {
	t.Parallel()

	s := New(nil)
	assert.NotEmpty(t, s.HelpStyle(widget.Dark).Render("help"))
}
