package tui

import (
	"testing"

	"survivors-lab/internal/world"
)

func TestScreenDrawsPlayerAtCentre(t *testing.T) {
	s := NewScreen(80, 24)
	w := world.NewWorld(world.DefaultConfig())

	if err := world.Present(s, w.Frame()); err != nil {
		t.Fatalf("present: %v", err)
	}
	if got := s.Cell(40, 12); got != '@' {
		t.Fatalf("centre cell: got %q want '@'", got)
	}
}

func TestScreenDrawsEnemiesAbovePlayer(t *testing.T) {
	s := NewScreen(80, 24)
	w := world.NewWorld(world.DefaultConfig())
	world.Present(s, w.Frame())

	// enemy 2 spawns at (0, 0.5): column 40, row (1-0.5)/2*24 = 6
	if got := s.Cell(40, 6); got != 'x' {
		t.Fatalf("enemy cell: got %q want 'x'", got)
	}
}

func TestScreenSubmitKinds(t *testing.T) {
	cases := []struct {
		name string
		cmd  world.DrawCommand
		want rune
	}{
		{"rect", world.DrawCommand{Kind: world.DrawRect, Scale: world.Vec2{X: 0.1, Y: 0.1}, Tint: world.White}, '█'},
		{"circle", world.DrawCommand{Kind: world.DrawCircle, Scale: world.Vec2{X: 0.01, Y: 0.01}, Tint: world.White}, '•'},
		{"digit", world.DrawCommand{Kind: world.DrawSprite, Sheet: world.SheetDigits, Frame: 7, Scale: world.Vec2{X: 0.06, Y: 0.06}}, '7'},
		{"gem", world.DrawCommand{Kind: world.DrawSprite, Sheet: world.SheetGem, Scale: world.Vec2{X: 0.05, Y: 0.05}}, '◆'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScreen(40, 20)
			s.BeginFrame()
			s.Submit(c.cmd)
			if got := s.Cell(20, 10); got != c.want {
				t.Fatalf("centre cell: got %q want %q", got, c.want)
			}
		})
	}
}

func TestScreenClipsOffscreenCommands(t *testing.T) {
	s := NewScreen(10, 5)
	s.BeginFrame()
	s.Submit(world.DrawCommand{Kind: world.DrawRect, Pos: world.Vec2{X: 3, Y: 3}, Scale: world.Vec2{X: 1, Y: 1}})
	s.Submit(world.DrawCommand{Kind: world.DrawRect, Pos: world.Vec2{X: -1, Y: 1}, Scale: world.Vec2{X: 0.4, Y: 0.8}})

	if got := s.Cell(0, 0); got != '█' {
		t.Fatalf("corner cell: got %q want '█'", got)
	}
	if got := s.Cell(9, 4); got != ' ' {
		t.Fatalf("far cell: got %q want blank", got)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(world.RGBA{R: 1, G: 0.5, B: 0, A: 1}); got != "#FF8000" {
		t.Fatalf("hexColor: got %s want #FF8000", got)
	}
	if got := hexColor(world.RGBA{R: 2, G: -1, B: 1, A: 1}); got != "#FF00FF" {
		t.Fatalf("hexColor clamps: got %s want #FF00FF", got)
	}
}
