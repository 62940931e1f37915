package world

import "math"

// DrawKind tells the renderer how to draw a body. The simulation never reads it.
type DrawKind int

const (
	DrawSprite DrawKind = iota
	DrawCircle
	DrawRect
)

func (k DrawKind) String() string {
	switch k {
	case DrawSprite:
		return "sprite"
	case DrawCircle:
		return "circle"
	case DrawRect:
		return "rect"
	default:
		return "unknown"
	}
}

// SheetID names the sprite sheet a body samples from.
type SheetID int

const (
	SheetNone SheetID = iota
	SheetBackground
	SheetPlayer
	SheetEnemy
	SheetGem
	SheetDigits
)

var sheetNames = [...]string{
	SheetNone:       "none",
	SheetBackground: "background",
	SheetPlayer:     "player",
	SheetEnemy:      "enemy",
	SheetGem:        "gem",
	SheetDigits:     "digits",
}

func (s SheetID) String() string {
	if s < 0 || int(s) >= len(sheetNames) {
		return "unknown"
	}
	return sheetNames[s]
}

// ParseSheetID is the inverse of SheetID.String.
func ParseSheetID(name string) (SheetID, bool) {
	for i, n := range sheetNames {
		if n == name {
			return SheetID(i), true
		}
	}
	return SheetNone, false
}

// DigitFrames is the frame count of the digits sheet (0-9).
const DigitFrames = 10

// Animation selects a frame of a horizontal sprite sheet from elapsed time.
type Animation struct {
	Frame    int
	Frames   int
	Timer    float32
	Duration float32
}

// frozen is a frame duration that is never reached.
var frozen = float32(math.Inf(1))

func newAnimation(frames int, duration float32) Animation {
	if frames < 1 {
		frames = 1
	}
	return Animation{Frames: frames, Duration: duration}
}

// Advance moves to the next frame once Duration has elapsed.
// Frame stays within [0, Frames).
func (a *Animation) Advance(dt float32) {
	if a.Frames < 1 {
		a.Frames = 1
	}
	a.Timer += dt
	if a.Timer >= a.Duration {
		a.Frame = (a.Frame + 1) % a.Frames
		a.Timer = 0
	}
}

// Body is the state every drawable record embeds.
type Body struct {
	Pos     Vec2
	Scale   Vec2
	Flipped bool
	Tint    RGBA
	Anim    Animation
	Draw    DrawKind
	Sheet   SheetID
}

// Slot is the occupancy marker of a pooled record. A dead slot is free.
type Slot struct {
	Dead bool
}

func (s *Slot) IsDead() bool      { return s.Dead }
func (s *Slot) SetDead(dead bool) { s.Dead = dead }

type Player struct {
	Body

	BaseSpeed float32
	Speed     float32 // BaseSpeed, reduced while an enemy touches the player
	Radius    float32

	HP    float32
	MaxHP float32

	Level  int
	Exp    float32
	MaxExp float32
}

type Enemy struct {
	Body
	Slot

	Speed  float32
	Radius float32
	HP     float32
	MaxHP  float32
}

type Bullet struct {
	Body
	Slot

	Speed  float32
	Damage float32
	Life   float32
}

type Gem struct {
	Body
	Slot

	ExpValue float32
}

type DamageText struct {
	Body
	Slot

	LifeTime float32
	MaxLife  float32
}

// Decoration is a static body; the background is the only one.
type Decoration struct {
	Body

	UVScroll Vec2
	UVTiles  Vec2
}
