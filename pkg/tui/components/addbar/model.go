// Package addbar implements the add-URL prompt shown above the gallery.
package addbar

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pinwall/pkg/bookmark"
	"tableflip.dev/pinwall/pkg/tui/theme"
)

// Model wraps a text input with URL validation and the in-flight guard that
// keeps a submit from firing twice while an add is pending.
type Model struct {
	input    textinput.Model
	styles   theme.InputTheme
	inFlight bool
}

func New(styles theme.InputTheme) Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/image.png"
	ti.CharLimit = 2048
	ti.Prompt = ""
	return Model{input: ti, styles: styles}
}

func (m *Model) SetStyles(styles theme.InputTheme) {
	m.styles = styles
}

func (m *Model) SetWidth(w int) {
	inner := w - 10
	if inner < 20 {
		inner = 20
	}
	m.input.SetWidth(inner)
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Value() string {
	return m.input.Value()
}

// Valid reports whether the current buffer would be accepted by the store.
func (m Model) Valid() bool {
	return bookmark.ValidURL(m.input.Value())
}

func (m Model) InFlight() bool {
	return m.inFlight
}

// Begin marks an add as in flight. Returns false when a submit must be
// ignored: invalid input or a previous add still pending.
func (m *Model) Begin() bool {
	if m.inFlight || !m.Valid() {
		return false
	}
	m.inFlight = true
	return true
}

// Finish clears the in-flight guard; the buffer is cleared only on success.
func (m *Model) Finish(ok bool) {
	m.inFlight = false
	if ok {
		m.input.SetValue("")
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m Model) View() string {
	hint := m.styles.Invalid.Render("enter a full http(s) image URL")
	switch {
	case m.inFlight:
		hint = m.styles.Busy.Render("adding…")
	case m.Valid():
		hint = m.styles.Valid.Render("enter to add")
	}
	line := m.styles.Prompt.Render("pin ▸ ") + m.input.View() + "  " + hint
	return m.styles.Frame.Render(line)
}
