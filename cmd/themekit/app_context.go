package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/mode"
	"github.com/alexisbeaulieu97/themekit/internal/style"
)

// AppContext bundles the services a command run needs.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Resolver *mode.Chain
	// Styler is nil unless styled output was requested.
	Styler *style.Styler
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	if err := validateRootFlags(flags); err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log = log.WithFields(map[string]any{"command": cmd.Name()})

	detectors := []mode.Detector{
		mode.Explicit("flag", flags.theme, mode.PriorityFlag),
		mode.Explicit("config", cfg.Theme, mode.PriorityConfig),
	}
	if flags.detect || cfg.DetectTerminal {
		detectors = append(detectors, mode.Terminal(cmd.OutOrStdout(), mode.PriorityTerminal))
	}

	app := &AppContext{
		Config:   cfg,
		Logger:   log,
		Resolver: mode.NewChain(detectors, mode.WithLogger(log)),
	}
	if flags.styled || cfg.Styled {
		app.Styler = style.New(lipgloss.NewRenderer(cmd.OutOrStdout()))
	}
	return app, nil
}
