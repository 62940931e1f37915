package game

import (
	"image"
	"image/color"
	"testing"

	"survivors-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestViewportToPixels(t *testing.T) {
	v := viewport{W: 800, H: 600}

	cases := []struct {
		in     world.Vec2
		wx, wy float32
	}{
		{world.Vec2{X: 0, Y: 0}, 400, 300},
		{world.Vec2{X: -1, Y: 1}, 0, 0},
		{world.Vec2{X: 1, Y: -1}, 800, 600},
		{world.Vec2{X: 0.5, Y: 0.5}, 600, 150},
	}
	for _, c := range cases {
		x, y := v.toPixels(c.in)
		if x != c.wx || y != c.wy {
			t.Fatalf("toPixels(%+v): got (%.1f, %.1f) want (%.1f, %.1f)", c.in, x, y, c.wx, c.wy)
		}
	}
}

func TestViewportQuadIgnoresFlipSign(t *testing.T) {
	v := viewport{W: 800, H: 600}
	cmd := world.DrawCommand{Scale: world.Vec2{X: -0.5, Y: 0.5}}

	x, y, w, h := v.quad(cmd)
	if w != 200 || h != 150 {
		t.Fatalf("quad size: got %.1fx%.1f want 200x150", w, h)
	}
	if x != 300 || y != 225 {
		t.Fatalf("quad origin: got (%.1f, %.1f) want (300, 225)", x, y)
	}
}

func TestSrcRectSelectsFrame(t *testing.T) {
	frameW := float32(1) / 18
	uv := world.UV{OffsetX: 3 * frameW, ScaleX: frameW, ScaleY: 1}

	got := srcRect(uv, 180, 20)
	want := image.Rect(30, 0, 40, 20)
	if got != want {
		t.Fatalf("srcRect: got %v want %v", got, want)
	}
}

func TestSrcRectClipsToSheet(t *testing.T) {
	uv := world.UV{OffsetX: 0.95, ScaleX: 0.1, ScaleY: 1}

	got := srcRect(uv, 100, 10)
	if got.Max.X > 100 || got.Min.X != 95 {
		t.Fatalf("srcRect not clipped: %v", got)
	}
}

func TestTintColor(t *testing.T) {
	base := color.NRGBA{200, 100, 50, 255}

	if got := tintColor(base, world.White); got != base {
		t.Fatalf("white tint changed colour: got %v want %v", got, base)
	}
	got := tintColor(base, world.RGBA{R: 0.5, G: 0, B: 2, A: 1})
	want := color.NRGBA{100, 0, 50, 255}
	if got != want {
		t.Fatalf("tint: got %v want %v", got, want)
	}
}

type noSheets struct{}

func (noSheets) Sheet(world.SheetID) *ebiten.Image { return nil }

func TestRendererWithoutTargetReportsError(t *testing.T) {
	r := NewRenderer(noSheets{})
	f := world.NewWorld(world.DefaultConfig()).Frame()

	if err := world.Present(r, f); err == nil {
		t.Fatal("expected an error without a target image")
	}
}
