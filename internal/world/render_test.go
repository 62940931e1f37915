package world

import (
	"testing"

	"survivors-lab/internal/shared/input"
)

func TestFrameLayerOrder(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.dropGem(Vec2{X: 2, Y: 2})
	w.popDamageText(Vec2{X: -2, Y: 2}, 15)
	w.fire(Vec2{X: 0, Y: -1})

	f := w.Step(1.0/60, input.State{})
	if len(f.Commands) == 0 {
		t.Fatal("empty frame")
	}
	if f.Commands[0].Layer != LayerBackground {
		t.Fatalf("first layer: got %d want background", f.Commands[0].Layer)
	}
	if last := f.Commands[len(f.Commands)-1]; last.Layer != LayerLevelUI {
		t.Fatalf("last layer: got %d want level ui", last.Layer)
	}

	seen := map[Layer]int{}
	for i, cmd := range f.Commands {
		seen[cmd.Layer]++
		if i > 0 && cmd.Layer < f.Commands[i-1].Layer {
			t.Fatalf("command %d: layer %d drawn after layer %d", i, cmd.Layer, f.Commands[i-1].Layer)
		}
	}

	want := map[Layer]int{
		LayerBackground:  1,
		LayerEnemies:     MaxEnemies,
		LayerGems:        1,
		LayerPlayer:      1,
		LayerHPBar:       2,
		LayerBullets:     1,
		LayerDamageTexts: 1,
		LayerExpBar:      2,
		LayerLevelUI:     1,
	}
	for layer, n := range want {
		if seen[layer] != n {
			t.Fatalf("layer %d: got %d commands want %d", layer, seen[layer], n)
		}
	}
}

func TestEnemyCommandUVAndFlip(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Player.Pos = Vec2{X: 0.5, Y: 0.25}
	w.updateCamera()
	w.Enemies[0].Anim.Frame = 3
	w.Enemies[0].Flipped = true

	var cmd DrawCommand
	for _, c := range w.Frame().Commands {
		if c.Layer == LayerEnemies {
			cmd = c
			break
		}
	}

	frameW := float32(1) / float32(w.Cfg.EnemyFrames)
	if !approxEqual(cmd.UV.OffsetX, 3*frameW) || !approxEqual(cmd.UV.ScaleX, frameW) {
		t.Fatalf("uv: got offset %.4f scale %.4f want %.4f %.4f", cmd.UV.OffsetX, cmd.UV.ScaleX, 3*frameW, frameW)
	}
	if !approxEqual(cmd.UV.ScaleY, 1) || cmd.UV.OffsetY != 0 {
		t.Fatalf("uv y: got offset %.4f scale %.4f", cmd.UV.OffsetY, cmd.UV.ScaleY)
	}
	if !cmd.Flipped || !approxEqual(cmd.Scale.X, -w.Cfg.EnemyScaleX) {
		t.Fatalf("flip: flipped=%v scale.x=%.3f", cmd.Flipped, cmd.Scale.X)
	}
	want := spawnPoint(0).Sub(w.Camera)
	if !approxEqual(cmd.Pos.X, want.X) || !approxEqual(cmd.Pos.Y, want.Y) {
		t.Fatalf("camera-space pos: got (%.3f, %.3f) want (%.3f, %.3f)", cmd.Pos.X, cmd.Pos.Y, want.X, want.Y)
	}
	if cmd.Sheet != SheetEnemy || cmd.Kind != DrawSprite {
		t.Fatalf("enemy drawn as %v from sheet %d", cmd.Kind, cmd.Sheet)
	}
}

func TestBackgroundScrollsWithCamera(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Player.Pos = Vec2{X: 0.3, Y: -0.2}
	w.updateCamera()
	w.scrollBackground()

	bg := w.Frame().Commands[0]
	if !approxEqual(bg.Pos.X, 0) || !approxEqual(bg.Pos.Y, 0) {
		t.Fatalf("background should sit on the camera: (%.3f, %.3f)", bg.Pos.X, bg.Pos.Y)
	}
	if !approxEqual(bg.UV.OffsetX, 0.6) || !approxEqual(bg.UV.OffsetY, 0.4) {
		t.Fatalf("scroll: got (%.4f, %.4f) want (0.6, 0.4)", bg.UV.OffsetX, bg.UV.OffsetY)
	}
	if !approxEqual(bg.UV.ScaleX, w.Cfg.BackgroundTiles) || !approxEqual(bg.UV.ScaleY, w.Cfg.BackgroundTiles) {
		t.Fatalf("tiling: got (%.3f, %.3f)", bg.UV.ScaleX, bg.UV.ScaleY)
	}
}

func TestBarsFillFromLeftEdge(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Player.HP = 50
	w.updateUI()

	var bar []DrawCommand
	for _, c := range w.Frame().Commands {
		if c.Layer == LayerHPBar {
			bar = append(bar, c)
		}
	}
	if len(bar) != 2 {
		t.Fatalf("hp bar commands: got %d want 2", len(bar))
	}

	track, fill := bar[0], bar[1]
	left := w.Cfg.HPBarOffset.X
	if !approxEqual(track.Scale.X, w.Cfg.HPBarWidth) || !approxEqual(track.Pos.X, left+w.Cfg.HPBarWidth/2) {
		t.Fatalf("track: width %.3f centre %.3f", track.Scale.X, track.Pos.X)
	}
	half := w.Cfg.HPBarWidth / 2
	if !approxEqual(fill.Scale.X, half) || !approxEqual(fill.Pos.X, left+half/2) {
		t.Fatalf("fill: width %.3f centre %.3f want %.3f %.3f", fill.Scale.X, fill.Pos.X, half, left+half/2)
	}
	if fill.Kind != DrawRect || fill.Tint != hpFill {
		t.Fatalf("fill drawn as %v tint %+v", fill.Kind, fill.Tint)
	}
}

func TestLevelDigits(t *testing.T) {
	w := NewWorld(DefaultConfig())
	w.Player.Level = 12

	var digits []int
	for _, c := range w.Frame().Commands {
		if c.Layer == LayerLevelUI {
			if c.Sheet != SheetDigits {
				t.Fatalf("level digit from sheet %d", c.Sheet)
			}
			digits = append(digits, c.Frame)
		}
	}
	if len(digits) != 2 || digits[0] != 1 || digits[1] != 2 {
		t.Fatalf("level digits: got %v want [1 2]", digits)
	}
}

type recordingRenderer struct {
	began, ended bool
	layers       []Layer
}

func (r *recordingRenderer) BeginFrame()            { r.began = true }
func (r *recordingRenderer) Submit(cmd DrawCommand) { r.layers = append(r.layers, cmd.Layer) }
func (r *recordingRenderer) EndFrame() error {
	r.ended = true
	return nil
}

func TestPresentSubmitsInOrder(t *testing.T) {
	w := NewWorld(DefaultConfig())
	f := w.Frame()

	r := &recordingRenderer{}
	if err := Present(r, f); err != nil {
		t.Fatalf("present: %v", err)
	}
	if !r.began || !r.ended {
		t.Fatalf("frame brackets: began=%v ended=%v", r.began, r.ended)
	}
	if len(r.layers) != len(f.Commands) {
		t.Fatalf("submitted %d commands want %d", len(r.layers), len(f.Commands))
	}
	for i, cmd := range f.Commands {
		if r.layers[i] != cmd.Layer {
			t.Fatalf("command %d: submitted layer %d want %d", i, r.layers[i], cmd.Layer)
		}
	}
}
