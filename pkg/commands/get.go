package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/commands/options"
	"tableflip.dev/pinwall/pkg/printers"
	"tableflip.dev/pinwall/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List pinned images, newest first.",
		Example: `
pinwall get
pinwall get --output table
pinwall get --output json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			svc := &app.Service{Persistence: p}

			marks, err := svc.List(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}

			now := time.Now()
			switch {
			case oo.JSON():
				return oo.PrintJSON(marks)
			case oo.Table():
				_, _ = fmt.Fprintln(color.Output, printers.Table(now, marks))
			default:
				pp := printers.PrettyPrint{ShowID: io.ShowID}
				pp.TitleWithCount("pinned", len(marks))
				pp.Bookmarks(now, marks...)
			}
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
