package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/pinwall/pkg/bookmark"
)

type testConfig string

func (c testConfig) BasePath() string { return string(c) }

func newTestPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestSaveListRoundTrip(t *testing.T) {
	p := newTestPersistence(t)
	ctx := context.Background()

	if got := p.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty store, got %d bookmarks", len(got))
	}

	created := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	marks := []*bookmark.Bookmark{
		{ID: "b", URL: "https://x/b.png", Created: bookmark.Timestamp{Time: created.Add(time.Minute)}},
		{ID: "a", URL: "https://x/a.png", Created: bookmark.Timestamp{Time: created}, Broken: true},
	}
	if err := p.Save(marks); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(got))
	}
	// Order must survive the round trip exactly.
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order not preserved: [%s %s]", got[0].ID, got[1].ID)
	}
	if got[0].URL != "https://x/b.png" {
		t.Fatalf("unexpected url %q", got[0].URL)
	}
	if !got[1].Broken {
		t.Fatal("broken flag lost in round trip")
	}
	if !got[1].Created.Equal(created) {
		t.Fatalf("created mismatch: %v", got[1].Created)
	}
}

func TestListMalformedDataFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(testConfig(dir))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bookmarks"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt data: %v", err)
	}
	if got := p.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty list on corrupt data, got %d", len(got))
	}
}

func TestListDropsUnusableRecords(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(testConfig(dir))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	raw := `[{"id":"a","url":"https://x/a.png","created":""},null,{"id":"","url":"https://x/b.png","created":""}]`
	if err := os.WriteFile(filepath.Join(dir, "bookmarks"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	got := p.List(context.Background())
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only record a to survive, got %v", got)
	}
}

func TestTheme(t *testing.T) {
	p := newTestPersistence(t)

	if mode, ok := p.Theme(); ok {
		t.Fatalf("expected no stored theme, got %q", mode)
	}
	if err := p.SetTheme("blue"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if err := p.SetTheme(ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	mode, ok := p.Theme()
	if !ok || mode != ThemeDark {
		t.Fatalf("expected stored dark theme, got %q ok=%v", mode, ok)
	}
	if err := p.SetTheme(ThemeLight); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if mode, _ := p.Theme(); mode != ThemeLight {
		t.Fatalf("expected light theme, got %q", mode)
	}
}

func TestWatchEmitsOnSave(t *testing.T) {
	p := newTestPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := p.Save([]*bookmark.Bookmark{bookmark.New("https://x/a.png")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("watch channel closed before event arrived")
			}
			if ev.Type == EventBookmarksChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for bookmark change event")
		}
	}
}
