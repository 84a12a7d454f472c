package store

import (
	"context"
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pinwall/pkg/bookmark"
)

const (
	bookmarksKey = "bookmarks"
	themeKey     = "theme"
)

// Theme values persisted under the theme key.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Persistence defines the persistence contract for bookmarks and the theme
// preference. Reads are best effort: a missing or unreadable store yields the
// empty state, never an error.
type Persistence interface {
	List(ctx context.Context) []*bookmark.Bookmark
	Save(marks []*bookmark.Bookmark) error
	Theme() (string, bool)
	SetTheme(mode string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// List returns the stored bookmarks in display order (newest first). Missing
// or malformed data falls back to the empty list.
func (p *persistence) List(_ context.Context) []*bookmark.Bookmark {
	val, err := p.d.Read(bookmarksKey)
	if err != nil {
		return nil
	}
	var marks []*bookmark.Bookmark
	if err := json.Unmarshal(val, &marks); err != nil {
		return nil
	}
	out := marks[:0]
	for _, m := range marks {
		if m == nil || m.ID == "" || m.URL == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Save serializes the full list under the bookmarks key.
func (p *persistence) Save(marks []*bookmark.Bookmark) error {
	if marks == nil {
		marks = []*bookmark.Bookmark{}
	}
	data, err := json.Marshal(marks)
	if err != nil {
		return err
	}
	return p.d.Write(bookmarksKey, data)
}

// Theme returns the stored theme preference, reporting false when nothing
// usable is stored.
func (p *persistence) Theme() (string, bool) {
	val, err := p.d.Read(themeKey)
	if err != nil {
		return "", false
	}
	switch mode := string(val); mode {
	case ThemeDark, ThemeLight:
		return mode, true
	default:
		return "", false
	}
}

func (p *persistence) SetTheme(mode string) error {
	if mode != ThemeDark && mode != ThemeLight {
		return ErrUnknownTheme
	}
	return p.d.Write(themeKey, []byte(mode))
}
