// Package teaui hosts the Bubble Tea program for the pinwall TUI.
package teaui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"

	"tableflip.dev/pinwall/pkg/app"
	"tableflip.dev/pinwall/pkg/bookmark"
	"tableflip.dev/pinwall/pkg/probe"
	"tableflip.dev/pinwall/pkg/store"
	"tableflip.dev/pinwall/pkg/timeutil"
	"tableflip.dev/pinwall/pkg/tui/components/addbar"
	"tableflip.dev/pinwall/pkg/tui/components/gallery"
	"tableflip.dev/pinwall/pkg/tui/components/viewer"
	"tableflip.dev/pinwall/pkg/tui/events"
	"tableflip.dev/pinwall/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeViewer
	modeConfirm
	modeHelp
)

// Model contains UI state. All mutation flows through Update: user input,
// probe results, and storage notifications arrive as messages on the single
// Bubble Tea loop, so no locking is needed.
type Model struct {
	svc    *app.Service
	prober *probe.Prober
	ctx    context.Context
	cancel context.CancelFunc

	mode       mode
	resumeMode mode

	marks   []*bookmark.Bookmark
	dims    map[string]probe.Result
	probing map[string]bool

	grid     gallery.Model
	add      addbar.Model
	lightbox *viewer.State

	theme theme.Theme

	termWidth  int
	termHeight int

	// swipe gesture, tracked only while the viewer is open
	dragActive bool
	dragStartX int

	confirmID string

	status string

	watchCh <-chan store.Event
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, themeMode theme.Mode) *Model {
	th := theme.ForMode(themeMode)
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:        svc,
		prober:     &probe.Prober{},
		ctx:        ctx,
		cancel:     cancel,
		mode:       modeNormal,
		resumeMode: modeNormal,
		dims:       make(map[string]probe.Result),
		probing:    make(map[string]bool),
		grid:       gallery.New(th.Gallery),
		add:        addbar.New(th.Input),
		lightbox:   viewer.NewState(),
		theme:      th,
	}
	return m
}

// Init loads initial data
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadBookmarks(), startWatchCmd(m.ctx, m.svc))
}

type marksLoadedMsg struct {
	marks []*bookmark.Bookmark
}

type addResultMsg struct {
	url string
	err error
}

type watchReadyMsg struct {
	ch <-chan store.Event
}

type watchEventMsg struct {
	event store.Event
	ok    bool
}

func (m *Model) loadBookmarks() tea.Cmd {
	return func() tea.Msg {
		marks, err := m.svc.List(m.ctx)
		if err != nil {
			marks = nil
		}
		return marksLoadedMsg{marks: marks}
	}
}

// addCmd validates the input off the update loop. The list mutation happens
// when the result message is handled, against the list as it is then; a
// remove or a store reload that lands while the add is pending stays applied.
func (m *Model) addCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		url, err := bookmark.ParseURL(raw)
		return addResultMsg{url: url, err: err}
	}
}

// probeCmd checks the image behind one bookmark. Probes are independent per
// record; a failure flags only the record that triggered it.
func (m *Model) probeCmd(b *bookmark.Bookmark) tea.Cmd {
	ref := events.BookmarkRef{ID: b.ID, URL: b.URL}
	return func() tea.Msg {
		res, err := m.prober.Probe(m.ctx, ref.URL)
		if err != nil {
			return events.LoadFailedMsg{Bookmark: ref, Err: err}
		}
		return events.LoadSucceededMsg{
			Bookmark: ref,
			Width:    res.Width,
			Height:   res.Height,
			Format:   res.Format,
		}
	}
}

// scheduleProbes starts a probe for every record that has neither a result
// nor a probe in flight. Broken records are left alone until reloaded.
func (m *Model) scheduleProbes(cmds *[]tea.Cmd) {
	for _, b := range m.marks {
		if b.Broken || m.probing[b.ID] {
			continue
		}
		if _, ok := m.dims[b.ID]; ok {
			continue
		}
		m.probing[b.ID] = true
		*cmds = append(*cmds, m.probeCmd(b))
	}
}

func startWatchCmd(ctx context.Context, svc *app.Service) tea.Cmd {
	return func() tea.Msg {
		ch, err := svc.Watch(ctx)
		if err != nil {
			return watchReadyMsg{ch: nil}
		}
		return watchReadyMsg{ch: ch}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		return watchEventMsg{event: ev, ok: ok}
	}
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.grid.SetWidth(msg.Width - 2)
		m.add.SetWidth(msg.Width - 2)

	case marksLoadedMsg:
		m.marks = msg.marks
		m.lightbox.Reindex(-1, len(m.marks))
		if !m.lightbox.IsOpen() && m.mode == modeViewer {
			m.mode = modeNormal
		}
		m.refreshTiles()
		m.scheduleProbes(&cmds)

	case addResultMsg:
		if msg.err != nil {
			m.add.Finish(false)
			m.setStatus("Not a valid image URL")
			break
		}
		marks, added, err := m.svc.Add(m.ctx, m.marks, msg.url)
		m.add.Finish(err == nil)
		if err != nil {
			m.setStatus("Not a valid image URL")
			break
		}
		m.marks = marks
		m.grid.Select(0) // the new record is prepended
		m.probing[added.ID] = true
		m.refreshTiles()
		ref := events.BookmarkRef{ID: added.ID, URL: added.URL}
		cmds = append(cmds, m.probeCmd(added), func() tea.Msg {
			return events.BookmarkAddedMsg{Bookmark: ref}
		})

	case events.BookmarkAddedMsg:
		m.setStatus("Added " + msg.Bookmark.Label())

	case events.BookmarkRemovedMsg:
		m.setStatus("Removed " + msg.Bookmark.Label())

	case events.LoadSucceededMsg:
		delete(m.probing, msg.Bookmark.ID)
		m.dims[msg.Bookmark.ID] = probe.Result{Width: msg.Width, Height: msg.Height, Format: msg.Format}
		m.refreshTiles()

	case events.LoadFailedMsg:
		delete(m.probing, msg.Bookmark.ID)
		if marks, err := m.svc.MarkBroken(m.ctx, m.marks, msg.Bookmark.ID); err == nil {
			m.marks = marks
		}
		m.refreshTiles()

	case watchReadyMsg:
		m.watchCh = msg.ch
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchEventMsg:
		if !msg.ok {
			m.watchCh = nil
			break
		}
		switch msg.event.Type {
		case store.EventBookmarksChanged:
			cmds = append(cmds, m.loadBookmarks())
		case store.EventThemeChanged:
			if stored, ok := m.svc.Theme(m.ctx); ok {
				m.applyTheme(theme.Mode(stored))
			}
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)

	case tea.MouseClickMsg:
		if m.mode == modeViewer {
			m.beginDrag(msg.Mouse().X)
		}

	case tea.MouseReleaseMsg:
		if m.mode == modeViewer {
			m.endDrag(msg.Mouse().X)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeInsert:
		m.handleInsertKey(msg, cmds)
	case modeViewer:
		m.handleViewerKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	case modeHelp:
		m.mode = m.resumeMode
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
	case "a", "i":
		m.mode = modeInsert
		m.setStatus("")
		*cmds = append(*cmds, m.add.Focus())
	case "h", "left":
		m.grid.Move(-1, 0)
	case "l", "right":
		m.grid.Move(1, 0)
	case "k", "up":
		m.grid.Move(0, -1)
	case "j", "down":
		m.grid.Move(0, 1)
	case "enter", "o":
		m.openSelected()
	case "x", "d":
		if tile, ok := m.grid.Selected(); ok {
			m.confirmID = tile.ID
			m.mode = modeConfirm
		}
	case "t":
		m.toggleTheme()
	case "r":
		m.dims = make(map[string]probe.Result)
		m.probing = make(map[string]bool)
		*cmds = append(*cmds, m.loadBookmarks())
		m.setStatus("Reloading")
	case "?":
		m.resumeMode = m.mode
		m.mode = modeHelp
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.add.Blur()
	case "enter":
		// No-op while invalid or while a previous add is in flight.
		if m.add.Begin() {
			*cmds = append(*cmds, m.addCmd(m.add.Value()))
		}
	default:
		if cmd := m.add.Update(msg); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleViewerKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeViewer()
	case "left", "h":
		m.lightbox.Prev(len(m.marks))
	case "right", "l":
		m.lightbox.Next(len(m.marks))
	case "x", "d":
		if cmd := m.removeCurrent(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if cmd := m.removeByID(m.confirmID); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		m.confirmID = ""
		m.mode = modeNormal
	case "n", "esc":
		m.confirmID = ""
		m.mode = modeNormal
	}
}

// openSelected moves to Open(cursor) for the selected tile. Broken records
// never open; their tile carries the remove affordance instead.
func (m *Model) openSelected() {
	tile, ok := m.grid.Selected()
	if !ok {
		return
	}
	if tile.Broken {
		m.setStatus("That image failed to load; x removes it")
		return
	}
	if m.lightbox.Open(m.grid.Cursor(), len(m.marks)) {
		m.mode = modeViewer
	}
}

func (m *Model) closeViewer() {
	m.lightbox.Close()
	m.dragActive = false
	m.mode = modeNormal
}

// removeCurrent deletes the record the viewer is showing and re-clamps the
// cursor, closing the viewer only when the list becomes empty. Returns a
// command announcing the removal.
func (m *Model) removeCurrent() tea.Cmd {
	if !m.lightbox.IsOpen() {
		return nil
	}
	idx := m.lightbox.Index()
	if idx < 0 || idx >= len(m.marks) {
		return nil
	}
	ref := events.BookmarkRef{ID: m.marks[idx].ID, URL: m.marks[idx].URL}
	marks, err := m.svc.Remove(m.ctx, m.marks, ref.ID)
	if err != nil {
		return nil
	}
	m.marks = marks
	delete(m.dims, ref.ID)
	delete(m.probing, ref.ID)
	m.lightbox.Reindex(idx, len(marks))
	if !m.lightbox.IsOpen() {
		m.closeViewer()
	}
	m.refreshTiles()
	return func() tea.Msg {
		return events.BookmarkRemovedMsg{Bookmark: ref}
	}
}

func (m *Model) removeByID(id string) tea.Cmd {
	idx := indexOf(m.marks, id)
	if idx < 0 {
		return nil
	}
	ref := events.BookmarkRef{ID: id, URL: m.marks[idx].URL}
	marks, err := m.svc.Remove(m.ctx, m.marks, id)
	if err != nil {
		return nil
	}
	m.marks = marks
	delete(m.dims, id)
	delete(m.probing, id)
	m.lightbox.Reindex(-1, len(marks))
	m.refreshTiles()
	return func() tea.Msg {
		return events.BookmarkRemovedMsg{Bookmark: ref}
	}
}

func indexOf(marks []*bookmark.Bookmark, id string) int {
	for i, b := range marks {
		if b != nil && b.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) beginDrag(x int) {
	m.dragActive = true
	m.dragStartX = x
}

func (m *Model) endDrag(x int) {
	if !m.dragActive {
		return
	}
	delta := x - m.dragStartX
	m.dragActive = false
	switch viewer.SwipeFor(delta) {
	case viewer.SwipePrev:
		m.lightbox.Prev(len(m.marks))
	case viewer.SwipeNext:
		m.lightbox.Next(len(m.marks))
	}
}

func (m *Model) toggleTheme() {
	next := theme.ModeDark
	if m.theme.Mode == theme.ModeDark {
		next = theme.ModeLight
	}
	m.applyTheme(next)
	// Persisting the preference is best effort.
	_ = m.svc.SetTheme(m.ctx, string(next))
}

func (m *Model) applyTheme(mode theme.Mode) {
	m.theme = theme.ForMode(mode)
	m.grid.SetStyles(m.theme.Gallery)
	m.add.SetStyles(m.theme.Input)
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func (m *Model) refreshTiles() {
	now := time.Now()
	tiles := make([]gallery.Tile, 0, len(m.marks))
	for _, b := range m.marks {
		tile := gallery.Tile{ID: b.ID, URL: b.URL, Broken: b.Broken}
		age := timeutil.Relative(b.Created.Time, now)
		if res, ok := m.dims[b.ID]; ok {
			tile.Meta = fmt.Sprintf("%s · %s", res, age)
		} else if m.probing[b.ID] {
			tile.Meta = "checking…"
		} else {
			tile.Meta = age
		}
		tiles = append(tiles, tile)
	}
	m.grid.SetTiles(tiles)
}

// View renders the UI
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}

	if m.mode == modeViewer && m.lightbox.IsOpen() {
		return m.viewerView()
	}
	if m.mode == modeHelp {
		return m.helpView()
	}

	header := m.theme.Gallery.SelectedAccent.Render("pinwall") +
		m.theme.Gallery.Meta.Render(fmt.Sprintf("  %d pinned", len(m.marks)))

	var input string
	if m.mode == modeInsert {
		input = m.add.View()
	}

	body := m.grid.View()
	if m.mode == modeConfirm {
		body = m.confirmView()
	}

	footer := m.footerView()

	sections := []string{header}
	if input != "" {
		sections = append(sections, input)
	}
	sections = append(sections, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewerView() string {
	idx := m.lightbox.Index()
	if idx < 0 || idx >= len(m.marks) {
		return ""
	}
	b := m.marks[idx]
	item := viewer.Item{
		URL:      b.URL,
		Age:      timeutil.Relative(b.Created.Time, time.Now()),
		Position: fmt.Sprintf("%d/%d", idx+1, len(m.marks)),
	}
	if res, ok := m.dims[b.ID]; ok {
		item.Width = res.Width
		item.Height = res.Height
		item.Format = res.Format
	}
	view := viewer.Render(m.theme.Viewer, m.termWidth, m.termHeight-1, item)
	help := m.theme.Footer.Help.Render("←/→ navigate (wraps) · drag to swipe · x remove · esc close")
	return lipgloss.JoinVertical(lipgloss.Left, view, help)
}

func (m *Model) confirmView() string {
	panel := m.theme.Viewer.Frame.Render(
		m.theme.Gallery.URL.Render("Remove this bookmark?") + "\n\n" +
			m.theme.Footer.Help.Render("y remove · n keep"))
	return lipgloss.Place(m.termWidth, m.termHeight-4, lipgloss.Center, lipgloss.Center, panel)
}

func (m *Model) helpView() string {
	lines := []string{
		m.theme.Gallery.SelectedAccent.Render("pinwall keys"),
		"",
		"a          add an image URL",
		"enter      open the selected image",
		"h/j/k/l    move around the wall",
		"x          remove (with confirmation)",
		"t          toggle light/dark theme",
		"r          reload and re-check images",
		"",
		"in the viewer:",
		"←/→        previous / next (wraps around)",
		"drag       swipe left or right",
		"esc        close",
		"",
		m.theme.Footer.Help.Render("press any key to go back"),
	}
	panel := m.theme.Viewer.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, panel)
}

func (m *Model) footerView() string {
	help := "a add · enter view · x remove · t theme · ? help · q quit"
	if m.mode == modeInsert {
		help = "enter add · esc back"
	}
	line := m.theme.Footer.Help.Render(help)
	if m.status != "" {
		line += m.theme.Footer.Status.Render("  ·  " + m.status)
	}
	return line
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc, initialThemeMode(svc)),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// initialThemeMode prefers the stored choice and falls back to the
// terminal's background when nothing is stored.
func initialThemeMode(svc *app.Service) theme.Mode {
	if stored, ok := svc.Theme(context.Background()); ok {
		return theme.Mode(stored)
	}
	if termenv.HasDarkBackground() {
		return theme.ModeDark
	}
	return theme.ModeLight
}
