package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/showcase"
)

type rootFlags struct {
	theme      string
	configPath string
	detect     bool
	styled     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "Render a button and a text field from one theme factory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			return showcase.New(showcase.Options{
				Resolver: app.Resolver,
				Styler:   app.Styler,
				Logger:   app.Logger,
			}).Run(cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Force a theme (light or dark)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a themekit YAML config")
	cmd.PersistentFlags().BoolVar(&flags.detect, "detect", false, "Use the terminal background when no theme is set")
	cmd.PersistentFlags().BoolVar(&flags.styled, "styled", false, "Decorate widgets with theme colors and borders")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newAboutCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
