package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tui/preview"
)

var errNotInteractive = errors.New("preview needs an interactive terminal")

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse both widget families interactively",
		Long:  "Open a live preview of the active widget family. Press t to swap the theme factory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return errNotInteractive
			}

			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			model := preview.NewModel(app.Resolver, style.New(lipgloss.NewRenderer(cmd.OutOrStdout())))
			program := tea.NewProgram(model,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				app.Logger.Error(err, "preview exited")
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
