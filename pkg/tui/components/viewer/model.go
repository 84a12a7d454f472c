package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/pinwall/pkg/tui/theme"
)

// Item carries everything the lightbox needs to present one bookmark.
type Item struct {
	URL      string
	Width    int // probed pixel width, zero when unknown
	Height   int // probed pixel height, zero when unknown
	Format   string
	Age      string
	Position string // e.g. "3/12"
}

// Render draws the lightbox for item, centered in a termWidth x termHeight
// area. The terminal cannot paint the actual pixels, so the image becomes a
// placeholder canvas with the probed aspect ratio.
func Render(styles theme.ViewerTheme, termWidth, termHeight int, item Item) string {
	maxCanvasWidth := termWidth - 12
	if maxCanvasWidth < 16 {
		maxCanvasWidth = 16
	}
	maxCanvasHeight := termHeight - 10
	if maxCanvasHeight < 4 {
		maxCanvasHeight = 4
	}

	rows, cols := canvasSize(item.Width, item.Height, maxCanvasWidth, maxCanvasHeight)
	canvasLine := strings.Repeat("░", cols)
	canvas := make([]string, 0, rows+4)
	for i := 0; i < rows; i++ {
		canvas = append(canvas, styles.Canvas.Render(canvasLine))
	}

	title := truncate.StringWithTail(item.URL, uint(maxCanvasWidth), "…")
	meta := item.Age
	if item.Width > 0 && item.Height > 0 {
		meta = fmt.Sprintf("%dx%d %s · %s", item.Width, item.Height, item.Format, item.Age)
	}

	lines := []string{styles.Title.Render(title), ""}
	lines = append(lines, canvas...)
	lines = append(lines, "",
		styles.Meta.Render(meta)+"  "+styles.Position.Render(item.Position))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center,
		styles.Frame.Render(content))
}

// canvasSize fits the probed aspect ratio into the available cell area,
// assuming a terminal cell is roughly twice as tall as it is wide.
func canvasSize(imgW, imgH, maxCols, maxRows int) (rows, cols int) {
	if imgW <= 0 || imgH <= 0 {
		imgW, imgH = 4, 3
	}
	cols = maxCols
	rows = cols * imgH / (imgW * 2)
	if rows > maxRows {
		rows = maxRows
		cols = rows * imgW * 2 / imgH
		if cols > maxCols {
			cols = maxCols
		}
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}
