package app

import (
	"context"
	"errors"

	"tableflip.dev/pinwall/pkg/bookmark"
	"tableflip.dev/pinwall/pkg/store"
)

// Service provides high-level operations for bookmarks and the theme
// preference. It wraps persistence so UIs and CLIs can share logic.
//
// Mutations operate on a caller-owned list and return the updated list; the
// full list is persisted after every mutation. Writes are best effort: a
// failed write keeps the in-memory result and is never surfaced.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotFound      = errors.New("app: bookmark not found")
)

// List loads the stored bookmarks in display order (newest first).
func (s *Service) List(ctx context.Context) ([]*bookmark.Bookmark, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.List(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Add validates rawURL and prepends a new bookmark with a fresh id and the
// current time. Returns bookmark.ErrInvalidURL and the unchanged list when
// the input does not parse.
func (s *Service) Add(ctx context.Context, marks []*bookmark.Bookmark, rawURL string) ([]*bookmark.Bookmark, *bookmark.Bookmark, error) {
	url, err := bookmark.ParseURL(rawURL)
	if err != nil {
		return marks, nil, err
	}
	b := bookmark.New(url)
	updated := append([]*bookmark.Bookmark{b}, marks...)
	s.persist(updated)
	return updated, b, nil
}

// Remove deletes the bookmark with the given id.
func (s *Service) Remove(ctx context.Context, marks []*bookmark.Bookmark, id string) ([]*bookmark.Bookmark, error) {
	idx := indexOf(marks, id)
	if idx < 0 {
		return marks, ErrNotFound
	}
	updated := make([]*bookmark.Bookmark, 0, len(marks)-1)
	updated = append(updated, marks[:idx]...)
	updated = append(updated, marks[idx+1:]...)
	s.persist(updated)
	return updated, nil
}

// MarkBroken flags the bookmark with the given id as failed. The record is
// mutated in place and stays in the list; broken tiles carry their own
// remove affordance.
func (s *Service) MarkBroken(ctx context.Context, marks []*bookmark.Bookmark, id string) ([]*bookmark.Bookmark, error) {
	idx := indexOf(marks, id)
	if idx < 0 {
		return marks, ErrNotFound
	}
	marks[idx].Broken = true
	s.persist(marks)
	return marks, nil
}

// Theme returns the stored theme preference, reporting false when nothing is
// stored. Callers fall back to terminal background detection.
func (s *Service) Theme(ctx context.Context) (string, bool) {
	if s.Persistence == nil {
		return "", false
	}
	return s.Persistence.Theme()
}

// SetTheme persists the theme preference.
func (s *Service) SetTheme(ctx context.Context, mode string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SetTheme(mode)
}

func (s *Service) persist(marks []*bookmark.Bookmark) {
	if s.Persistence == nil {
		return
	}
	// Storage failures must never block or crash the UI; the worst outcome
	// is loss of persistence.
	_ = s.Persistence.Save(marks)
}

func indexOf(marks []*bookmark.Bookmark, id string) int {
	for i, m := range marks {
		if m != nil && m.ID == id {
			return i
		}
	}
	return -1
}
