package printers

import (
	"time"

	"github.com/gosuri/uitable"

	"tableflip.dev/pinwall/pkg/bookmark"
	"tableflip.dev/pinwall/pkg/timeutil"
)

// Table renders bookmarks as an aligned table.
func Table(now time.Time, marks []*bookmark.Bookmark) string {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("ID", "URL", "ADDED", "STATUS")
	for _, m := range marks {
		status := "ok"
		if m.Broken {
			status = "broken"
		}
		table.AddRow(m.ID, m.URL, timeutil.Relative(m.Created.Time, now), status)
	}
	return table.String()
}
