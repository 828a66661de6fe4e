package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/about"
	"github.com/alexisbeaulieu97/themekit/internal/widget"
)

func newAboutCmd(flags *rootFlags) *cobra.Command {
	var markdownStyle string

	cmd := &cobra.Command{
		Use:   "about",
		Short: "Describe the active widget family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			factory := widget.ForDarkMode(app.Resolver.DarkModeEnabled())
			out, err := about.Render(factory, about.Options{
				Style: markdownStyle,
				Wrap:  terminalWidth(cmd.OutOrStdout()),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&markdownStyle, "style", "", "Glamour style to use instead of the theme's (e.g. notty, ascii)")
	return cmd
}

func terminalWidth(stream any) int {
	file, ok := stream.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
