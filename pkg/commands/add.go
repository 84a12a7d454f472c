package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/commands/options"
	"tableflip.dev/pinwall/pkg/printers"
	"tableflip.dev/pinwall/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Pin an image URL to the wall.",
		Example: `
pinwall add https://example.com/cat.png
`,
		Args: cobra.ExactArgs(1),
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
			marks, added, err := svc.Add(ctx, marks, args[0])
			if err != nil {
				return oo.HandleError(err)
			}

			if oo.JSON() {
				return oo.PrintJSON(added)
			}
			pp := printers.PrettyPrint{}
			pp.TitleWithCount("pinned", len(marks))
			pp.Bookmarks(time.Now(), added)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
