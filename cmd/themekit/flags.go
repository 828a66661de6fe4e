package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

func validateRootFlags(flags *rootFlags) error {
	if strings.TrimSpace(flags.theme) != "" {
		if _, err := widget.ParseTheme(flags.theme); err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
	}

	if flags.configPath == "" {
		return nil
	}
	abs, err := filepath.Abs(flags.configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}
	return nil
}
