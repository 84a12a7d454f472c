package bookmark

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved reference to an externally hosted image: the URL and
// metadata, never the image bytes.
type Bookmark struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	Created Timestamp `json:"created"`
	Broken  bool      `json:"broken,omitempty"`
}

// New builds a bookmark for url with a fresh id and the current time. The
// caller is expected to have validated url already.
func New(url string) *Bookmark {
	return &Bookmark{
		ID:      uuid.NewString(),
		URL:     url,
		Created: Timestamp{Time: time.Now()},
	}
}

func (b *Bookmark) String() string {
	state := "ok"
	if b.Broken {
		state = "broken"
	}
	return fmt.Sprintf("%s %s (%s)", b.ID, b.URL, state)
}
