package widget

// ThemeFactory builds a family of widgets that share one theme.
type ThemeFactory interface {
	CreateButton() Button
	CreateTextField() TextField
	Theme() Theme
}

// LightThemeFactory produces light widgets only.
type LightThemeFactory struct{}

func (LightThemeFactory) CreateButton() Button       { return LightButton{} }
func (LightThemeFactory) CreateTextField() TextField { return LightTextField{} }
func (LightThemeFactory) Theme() Theme               { return Light }

// DarkThemeFactory produces dark widgets only.
type DarkThemeFactory struct{}

func (DarkThemeFactory) CreateButton() Button       { return DarkButton{} }
func (DarkThemeFactory) CreateTextField() TextField { return DarkTextField{} }
func (DarkThemeFactory) Theme() Theme               { return Dark }

// ForTheme returns the factory for theme. Any value other than Dark yields
// the light factory.
func ForTheme(theme Theme) ThemeFactory {
	if theme == Dark {
		return DarkThemeFactory{}
	}
	return LightThemeFactory{}
}

// ForDarkMode maps a dark-mode decision onto a factory.
func ForDarkMode(dark bool) ThemeFactory {
	if dark {
		return DarkThemeFactory{}
	}
	return LightThemeFactory{}
}
