package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/pinwall/pkg/bookmark"
	"tableflip.dev/pinwall/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-4dca-a1b2-c3d4e5f60718  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" bookmark")
	default:
		_, _ = c.Println(" bookmarks")
	}
}

// Bookmarks prints the list in display order, one line per record.
func (pp *PrettyPrint) Bookmarks(now time.Time, marks ...*bookmark.Bookmark) {
	if len(marks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	age := color.New(color.Faint)

	for _, m := range marks {
		if pp.ShowID {
			_, _ = y.Print(m.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(m.ID)))
		}
		if m.Broken {
			_, _ = bad.Print("✗ ")
		} else {
			_, _ = ok.Print("● ")
		}
		_, _ = t.Print(m.URL)
		_, _ = age.Printf("  %s\n", timeutil.Relative(m.Created.Time, now))
	}
	_, _ = t.Println("")
}
