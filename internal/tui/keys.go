package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"survivors-lab/internal/shared/input"
)

// holdWindow is how long one key press counts as held. Terminals report
// presses and auto-repeats but no releases.
const holdWindow = 150 * time.Millisecond

var keyBindings = map[string]input.Key{
	"w": input.KeyUp, "up": input.KeyUp, "k": input.KeyUp,
	"s": input.KeyDown, "down": input.KeyDown, "j": input.KeyDown,
	"a": input.KeyLeft, "left": input.KeyLeft, "h": input.KeyLeft,
	"d": input.KeyRight, "right": input.KeyRight, "l": input.KeyRight,
}

// heldKeys is an input.Source built from key press events.
type heldKeys struct {
	pressed [input.KeyRight + 1]time.Time
	window  time.Duration
	now     func() time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{window: holdWindow, now: time.Now}
}

// Press records a key event and reports whether it was a movement key.
func (h *heldKeys) Press(msg tea.KeyMsg) bool {
	k, ok := keyBindings[msg.String()]
	if !ok {
		return false
	}
	h.pressed[k] = h.now()
	return true
}

func (h *heldKeys) IsKeyDown(k input.Key) bool {
	if k < 0 || int(k) >= len(h.pressed) {
		return false
	}
	t := h.pressed[k]
	return !t.IsZero() && h.now().Sub(t) < h.window
}

// Release forgets every press.
func (h *heldKeys) Release() {
	h.pressed = [input.KeyRight + 1]time.Time{}
}
