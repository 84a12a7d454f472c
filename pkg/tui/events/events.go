// Package events defines the messages exchanged between the pinwall TUI
// components on the single Bubble Tea update loop. Image loads and storage
// changes arrive here as ordinary messages, so every state mutation is
// serialized with user input.
package events

import (
	"fmt"
)

// BookmarkRef captures the metadata required to identify a bookmark in
// cross-component events.
type BookmarkRef struct {
	ID  string
	URL string
}

// Label returns a human-friendly identifier for the bookmark.
func (r BookmarkRef) Label() string {
	if r.URL != "" {
		return r.URL
	}
	return r.ID
}

// LoadSucceededMsg reports that the image behind a bookmark was fetched and
// its header decoded. Tagged with the record id so one result never affects
// another record.
type LoadSucceededMsg struct {
	Bookmark BookmarkRef
	Width    int
	Height   int
	Format   string
}

// Describe renders the result in a human-friendly format for logs.
func (m LoadSucceededMsg) Describe() string {
	return fmt.Sprintf(`bookmark:%q size:"%dx%d" format:%q`, m.Bookmark.Label(), m.Width, m.Height, m.Format)
}

// LoadFailedMsg reports that the image behind a bookmark could not be
// loaded. The record is flagged, never removed automatically.
type LoadFailedMsg struct {
	Bookmark BookmarkRef
	Err      error
}

// Describe renders the failure in a human-friendly format for logs.
func (m LoadFailedMsg) Describe() string {
	return fmt.Sprintf(`bookmark:%q err:%q`, m.Bookmark.Label(), m.Err)
}

// BookmarkAddedMsg announces that an add completed and the list changed.
type BookmarkAddedMsg struct {
	Bookmark BookmarkRef
}

// Describe renders the addition for logs.
func (m BookmarkAddedMsg) Describe() string {
	return fmt.Sprintf(`bookmark:%q action:"add"`, m.Bookmark.Label())
}

// BookmarkRemovedMsg announces that a record was deleted.
type BookmarkRemovedMsg struct {
	Bookmark BookmarkRef
}

// Describe renders the removal for logs.
func (m BookmarkRemovedMsg) Describe() string {
	return fmt.Sprintf(`bookmark:%q action:"remove"`, m.Bookmark.Label())
}
