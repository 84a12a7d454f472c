package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/commands/options"
	"tableflip.dev/pinwall/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "unpin"},
		Short:   "Remove a pinned image by id.",
		Example: `
pinwall remove 171dff69-f8b9-4dca-a1b2-c3d4e5f60718
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return bookmarkCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			svc := &app.Service{Persistence: p}
			ctx := context.Background()

			marks, err := svc.List(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			if _, err := svc.Remove(ctx, marks, args[0]); err != nil {
				return oo.HandleError(err)
			}
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
