package input

// State is the directional input sampled once per step.
type State struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Key is a logical key; shells map physical keys onto it.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// Source reports whether a logical key is held right now.
// It is polled, never event-driven.
type Source interface {
	IsKeyDown(k Key) bool
}

// Poll samples src into a State.
func Poll(src Source) State {
	if src == nil {
		return State{}
	}
	return State{
		Up:    src.IsKeyDown(KeyUp),
		Down:  src.IsKeyDown(KeyDown),
		Left:  src.IsKeyDown(KeyLeft),
		Right: src.IsKeyDown(KeyRight),
	}
}

// Any reports whether any direction is held.
func (s State) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}
