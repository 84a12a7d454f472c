// Package gallery renders the bookmark tile grid and tracks the cursor.
package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/pinwall/pkg/tui/theme"
)

const (
	tileWidth = 32
	gutter    = 1
)

// Tile is one rendered cell of the grid.
type Tile struct {
	ID     string
	URL    string
	Meta   string // dimensions and age once probed, or a pending note
	Broken bool
}

// Model holds the grid state. Order follows the bookmark list: newest first,
// left to right, top to bottom.
type Model struct {
	styles theme.GalleryTheme
	tiles  []Tile
	cursor int
	width  int
}

func New(styles theme.GalleryTheme) Model {
	return Model{styles: styles}
}

func (m *Model) SetStyles(styles theme.GalleryTheme) {
	m.styles = styles
}

func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetTiles replaces the grid contents, clamping the cursor into the new
// bounds.
func (m *Model) SetTiles(tiles []Tile) {
	m.tiles = tiles
	if m.cursor > len(tiles)-1 {
		m.cursor = len(tiles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Len() int    { return len(m.tiles) }
func (m Model) Cursor() int { return m.cursor }

func (m Model) Columns() int {
	cols := m.width / (tileWidth + gutter)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Select moves the cursor to i when valid.
func (m *Model) Select(i int) {
	if i >= 0 && i < len(m.tiles) {
		m.cursor = i
	}
}

// Selected returns the tile under the cursor.
func (m Model) Selected() (Tile, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tiles) {
		return Tile{}, false
	}
	return m.tiles[m.cursor], true
}

// Move shifts the cursor by dx columns and dy rows, clamped to the grid.
// The gallery does not wrap; circular navigation belongs to the viewer.
func (m *Model) Move(dx, dy int) {
	if len(m.tiles) == 0 {
		return
	}
	next := m.cursor + dx + dy*m.Columns()
	if next < 0 {
		next = 0
	}
	if next > len(m.tiles)-1 {
		next = len(m.tiles) - 1
	}
	m.cursor = next
}

func (m Model) View() string {
	if len(m.tiles) == 0 {
		return m.styles.EmptyState.Render("No bookmarks yet. Press a and paste an image URL.")
	}

	cols := m.Columns()
	rows := make([]string, 0, (len(m.tiles)+cols-1)/cols)
	row := make([]string, 0, cols)
	for i, tile := range m.tiles {
		row = append(row, m.renderTile(tile, i == m.cursor))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(tile Tile, selected bool) string {
	inner := tileWidth - 4 // border and padding
	url := truncate.StringWithTail(tile.URL, uint(inner), "…")

	var lines []string
	if tile.Broken {
		lines = []string{
			m.styles.BrokenMark.Render("✗ ") + m.styles.URL.Render(url),
			m.styles.BrokenHint.Render("failed to load"),
			m.styles.BrokenHint.Render("x removes this bookmark"),
		}
	} else {
		marker := "  "
		if selected {
			marker = m.styles.SelectedAccent.Render("▸ ")
		}
		meta := tile.Meta
		if meta == "" {
			meta = "checking…"
		}
		lines = []string{
			marker + m.styles.URL.Render(url),
			m.styles.Meta.Render(meta),
			"",
		}
	}

	frame := m.styles.Tile
	switch {
	case selected:
		frame = m.styles.TileSelected
	case tile.Broken:
		frame = m.styles.TileBroken
	}
	return frame.Width(tileWidth - 2).Render(strings.Join(lines, "\n"))
}
