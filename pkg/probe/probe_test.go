package probe

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProbeDecodesDimensions(t *testing.T) {
	data := pngBytes(t, 640, 480)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	p := &Prober{Client: srv.Client()}
	res, err := p.Probe(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if res.Width != 640 || res.Height != 480 {
		t.Fatalf("expected 640x480, got %dx%d", res.Width, res.Height)
	}
	if res.Format != "png" {
		t.Fatalf("expected png format, got %q", res.Format)
	}
}

func TestProbeRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := &Prober{Client: srv.Client()}
	if _, err := p.Probe(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestProbeRejectsNonImageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	p := &Prober{Client: srv.Client()}
	if _, err := p.Probe(context.Background(), srv.URL+"/page"); err == nil {
		t.Fatal("expected error for non-image body")
	}
}

func TestProbeHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Prober{Client: srv.Client()}
	if _, err := p.Probe(ctx, srv.URL+"/slow.png"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
