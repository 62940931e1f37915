package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"survivors-lab/internal/shared/input"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestHeldKeysExpire(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	h := newHeldKeys()
	h.now = clock.now

	if !h.Press(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatal("left arrow not bound")
	}
	if !h.Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}) {
		t.Fatal("w not bound")
	}
	if h.Press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}) {
		t.Fatal("z should not be bound")
	}

	got := input.Poll(h)
	if !got.Left || !got.Up || got.Right || got.Down {
		t.Fatalf("held state: got %+v want left+up", got)
	}

	clock.t = clock.t.Add(holdWindow - time.Millisecond)
	if !h.IsKeyDown(input.KeyLeft) {
		t.Fatal("key released before the hold window")
	}

	clock.t = clock.t.Add(2 * time.Millisecond)
	if got := input.Poll(h); got.Any() {
		t.Fatalf("keys still held after the hold window: %+v", got)
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := newHeldKeys()
	h.Press(tea.KeyMsg{Type: tea.KeyRight})
	h.Release()
	if h.IsKeyDown(input.KeyRight) {
		t.Fatal("release kept the key held")
	}
}
