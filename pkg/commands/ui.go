package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/store"
	teaui "tableflip.dev/pinwall/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive image wall",
		Example: `
pinwall ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return teaui.Run(&app.Service{Persistence: p})
		},
	}

	topLevel.AddCommand(cmd)
}
