// Package probe checks that a bookmarked URL actually serves a decodable
// image. Only the header is read; image bytes are never kept.
package probe

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Result describes a successfully probed image.
type Result struct {
	Width  int
	Height int
	Format string
}

func (r Result) String() string {
	return fmt.Sprintf("%dx%d %s", r.Width, r.Height, r.Format)
}

// headerLimit bounds how much of the body is read while decoding the image
// header. Dimensions live in the first few hundred bytes for the supported
// formats; the generous limit covers jpegs with large metadata blocks.
const headerLimit = 512 * 1024

// Prober fetches image headers. The zero value uses a default HTTP client
// with a 15 second timeout.
type Prober struct {
	Client *http.Client
}

var defaultClient = &http.Client{Timeout: 15 * time.Second}

// Probe fetches url and decodes its image header. Each probe is independent;
// a failure affects only the record that referenced the URL.
func (p *Prober) Probe(ctx context.Context, url string) (Result, error) {
	client := p.Client
	if client == nil {
		client = defaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("probe: build request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("probe: fetch: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, headerLimit))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("probe: unexpected status %s", resp.Status)
	}

	cfg, format, err := image.DecodeConfig(io.LimitReader(resp.Body, headerLimit))
	if err != nil {
		return Result{}, fmt.Errorf("probe: decode image header: %w", err)
	}
	return Result{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
