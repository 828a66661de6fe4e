// Package preview is an interactive bubbletea view of a widget family.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/mode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

// Model shows one button and one text field built by the active factory.
type Model struct {
	factory widget.ThemeFactory
	button  widget.Button
	field   widget.TextField

	input  textinput.Model
	keys   keyMap
	help   help.Model
	styler *style.Styler

	quitting bool
}

// NewModel seeds the preview from resolver. A nil styler uses the default
// lipgloss renderer.
func NewModel(resolver mode.Resolver, styler *style.Styler) Model {
	if resolver == nil {
		resolver = mode.Default()
	}
	if styler == nil {
		styler = style.New(nil)
	}

	m := Model{
		input:  textinput.New(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		styler: styler,
	}
	m.input.CharLimit = 64
	m.input.Width = 32
	m.apply(widget.ForDarkMode(resolver.DarkModeEnabled()))
	return m
}

// apply swaps in factory and rebuilds both widgets from it.
func (m *Model) apply(factory widget.ThemeFactory) {
	m.factory = factory
	m.button = factory.CreateButton()
	m.field = factory.CreateTextField()

	palette := style.PaletteFor(factory.Theme())
	m.input.Placeholder = m.field.Render()
	m.input.PromptStyle = m.styler.HelpStyle(factory.Theme())
	m.input.TextStyle = m.styler.TextStyle(factory.Theme())
	m.input.PlaceholderStyle = m.styler.HelpStyle(factory.Theme())
	m.input.Cursor.Style = m.input.Cursor.Style.Foreground(palette.Accent)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, m.keys.Quit) && (keyMsg.Type == tea.KeyCtrlC || !m.input.Focused()) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Focused() {
		if key.Matches(keyMsg, m.keys.Blur, m.keys.Focus) {
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Toggle):
		next := widget.Dark
		if m.factory.Theme() == widget.Dark {
			next = widget.Light
		}
		m.apply(widget.ForTheme(next))
		return m, nil
	case key.Matches(keyMsg, m.keys.Focus):
		cmd := m.input.Focus()
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.factory.Theme()
	var b strings.Builder
	b.WriteString(m.styler.HelpStyle(theme).Render(theme.String() + " theme"))
	b.WriteString("\n\n")
	b.WriteString(m.styler.Button(m.button))
	b.WriteString("\n")
	b.WriteString(m.styler.TextFieldStyle(theme).Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Theme reports the active theme.
func (m Model) Theme() widget.Theme { return m.factory.Theme() }

// Button returns the current button.
func (m Model) Button() widget.Button { return m.button }

// TextField returns the current text field.
func (m Model) TextField() widget.TextField { return m.field }

// Editing reports whether the text input has focus.
func (m Model) Editing() bool { return m.input.Focused() }

// Value returns whatever was typed into the text input.
func (m Model) Value() string { return m.input.Value() }
