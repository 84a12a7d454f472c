package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/store"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the color theme used by the ui.",
		ValidArgs: []string{store.ThemeDark, store.ThemeLight},
		Args:      cobra.MaximumNArgs(1),
		Example: `
pinwall theme
pinwall theme light
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}
			ctx := context.Background()

			if len(args) == 0 {
				mode, ok := svc.Theme(ctx)
				if !ok {
					mode = "unset (follows the terminal background)"
				}
				_, _ = fmt.Fprintln(color.Output, mode)
				return nil
			}
			return svc.SetTheme(ctx, args[0])
		},
	}

	topLevel.AddCommand(cmd)
}
