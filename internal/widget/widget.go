package widget

import (
	"errors"
	"fmt"
	"strings"
)

// Theme identifies a widget family.
type Theme int

const (
	Light Theme = iota
	Dark
)

// ErrUnknownTheme is returned when a theme name is neither light nor dark.
var ErrUnknownTheme = errors.New("unknown theme")

// String returns the display name used in rendered output.
func (t Theme) String() string {
	if t == Dark {
		return "Dark"
	}
	return "Light"
}

// ParseTheme converts a case-insensitive theme name into a Theme.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Themes lists every theme in display order.
func Themes() []Theme {
	return []Theme{Light, Dark}
}

type (
	// Button is a themed clickable element.
	Button interface {
		Render() string
		Theme() Theme
	}

	// TextField is a themed text entry element.
	TextField interface {
		Render() string
		Theme() Theme
	}
)

func describe(theme Theme, kind string) string {
	return "Rendering " + theme.String() + " " + kind
}
