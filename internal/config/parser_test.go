package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "themekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `theme: dark
detect_terminal: true
styled: true
log_level: debug
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cfg.Theme)
				require.True(t, cfg.DetectTerminal)
				require.True(t, cfg.Styled)
				require.Equal(t, "debug", cfg.LogLevel)

				theme, ok := cfg.ThemeOverride()
				require.True(t, ok)
				require.Equal(t, widget.Dark, theme)
			},
		},
		{
			name:     "empty file yields zero config",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Config{}, *cfg)

				_, ok := cfg.ThemeOverride()
				require.False(t, ok)
			},
		},
		{
			name:     "theme is case insensitive",
			contents: "theme: Light\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				theme, ok := cfg.ThemeOverride()
				require.True(t, ok)
				require.Equal(t, widget.Light, theme)
			},
		},
		{
			name:     "unknown theme fails validation",
			contents: "theme: sepia\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "sepia")
			},
		},
		{
			name:     "unknown log level fails validation",
			contents: "log_level: chatty\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *themeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log_level", validationErr.Field)
			},
		},
		{
			name:     "unknown key is a parse error",
			contents: "theme: dark\ncolour: blue\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "malformed yaml is a parse error",
			contents: "theme: [dark\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := ParseConfig(path)

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *themeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}
