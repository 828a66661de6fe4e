package config

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

// Config is the optional YAML file accepted by themekit. The zero value
// reproduces the default run: light theme, plain output, no detection.
type Config struct {
	Theme          string `yaml:"theme" validate:"omitempty,theme"`
	DetectTerminal bool   `yaml:"detect_terminal"`
	Styled         bool   `yaml:"styled"`
	LogLevel       string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ThemeOverride reports the configured theme, if any.
func (c Config) ThemeOverride() (widget.Theme, bool) {
	if strings.TrimSpace(c.Theme) == "" {
		return widget.Light, false
	}
	theme, err := widget.ParseTheme(c.Theme)
	if err != nil {
		return widget.Light, false
	}
	return theme, true
}
