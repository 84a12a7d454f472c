package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(pinwall completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(pinwall completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func bookmarkCompletions() []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	svc := &app.Service{Persistence: p}
	marks, err := svc.List(context.Background())
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(marks))
	for _, m := range marks {
		ids = append(ids, m.ID+"\t"+m.URL)
	}
	return ids
}
