package addbar

import (
	"testing"

	"tableflip.dev/pinwall/pkg/tui/theme"
)

func TestBeginRequiresValidInput(t *testing.T) {
	m := New(theme.Default().Input)

	if m.Begin() {
		t.Fatal("begin must reject an empty buffer")
	}

	m.input.SetValue("not a url")
	if m.Begin() {
		t.Fatal("begin must reject invalid input")
	}

	m.input.SetValue("https://x/a.png")
	if !m.Begin() {
		t.Fatal("begin rejected a valid URL")
	}
}

func TestBeginGuardsAgainstDoubleSubmit(t *testing.T) {
	m := New(theme.Default().Input)
	m.input.SetValue("https://x/a.png")

	if !m.Begin() {
		t.Fatal("first begin must succeed")
	}
	if m.Begin() {
		t.Fatal("second begin must be a no-op while in flight")
	}

	m.Finish(true)
	if m.InFlight() {
		t.Fatal("finish must clear the in-flight guard")
	}
	if m.Value() != "" {
		t.Fatalf("successful add must clear the buffer, got %q", m.Value())
	}
}

func TestFinishKeepsBufferOnFailure(t *testing.T) {
	m := New(theme.Default().Input)
	m.input.SetValue("https://x/a.png")
	m.Begin()
	m.Finish(false)

	if m.Value() != "https://x/a.png" {
		t.Fatalf("failed add must keep the buffer, got %q", m.Value())
	}
	if !m.Begin() {
		t.Fatal("begin must work again after a failed add")
	}
}
