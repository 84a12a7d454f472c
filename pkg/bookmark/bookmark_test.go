package bookmark

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "https", input: "https://example.com/a.png", want: "https://example.com/a.png"},
		{name: "http", input: "http://example.com/a.png", want: "http://example.com/a.png"},
		{name: "trims whitespace", input: "  https://example.com/a.png \n", want: "https://example.com/a.png"},
		{name: "blank", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "no scheme", input: "example.com/a.png", wantErr: true},
		{name: "relative path", input: "/images/a.png", wantErr: true},
		{name: "ftp scheme", input: "ftp://example.com/a.png", wantErr: true},
		{name: "file scheme", input: "file:///tmp/a.png", wantErr: true},
		{name: "scheme without host", input: "https://", wantErr: true},
		{name: "plain text", input: "not a url", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseURL(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseURL(%q) = %q, expected error", tc.input, got)
				}
				if ValidURL(tc.input) {
					t.Fatalf("ValidURL(%q) = true, expected false", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURL(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseURL(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := New("https://example.com/a.png")
		if b.ID == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Created.IsZero() {
			t.Fatal("expected created timestamp to be set")
		}
		if b.Broken {
			t.Fatal("new bookmarks must not start broken")
		}
	}
}

func TestBookmarkJSONRoundTrip(t *testing.T) {
	created := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	in := &Bookmark{
		ID:      "abc123",
		URL:     "https://example.com/a.png",
		Created: Timestamp{Time: created},
		Broken:  true,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &Bookmark{}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ID != in.ID || out.URL != in.URL || out.Broken != in.Broken {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
	if !out.Created.Equal(created) {
		t.Fatalf("created mismatch: %v vs %v", out.Created, created)
	}
}
