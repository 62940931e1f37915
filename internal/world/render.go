package world

import "strconv"

// Layer is the draw slot of a command. Commands are emitted in Layer order,
// which defines occlusion.
type Layer int

const (
	LayerBackground Layer = iota
	LayerEnemies
	LayerGems
	LayerPlayer
	LayerHPBar
	LayerBullets
	LayerDamageTexts
	LayerExpBar
	LayerLevelUI
)

// UV is the sub-rectangle of a sheet to sample, in texture units.
type UV struct {
	OffsetX, OffsetY float32
	ScaleX, ScaleY   float32
}

// DrawCommand is everything a renderer needs for one quad.
type DrawCommand struct {
	Kind    DrawKind
	Sheet   SheetID
	Layer   Layer
	Pos     Vec2 // camera space
	Scale   Vec2 // X is negative when Flipped
	Flipped bool
	UV      UV
	Frame   int // animation frame; for digit sprites, the digit
	Tint    RGBA
}

// Frame is the output of one step. Commands alias a buffer owned by the
// World and are only valid until the next Step.
type Frame struct {
	Commands []DrawCommand
	HUD      HUD
	Camera   Vec2
}

// Renderer consumes a frame's commands in order.
type Renderer interface {
	BeginFrame()
	Submit(cmd DrawCommand)
	EndFrame() error
}

// Present hands every command of f to r in emission order.
func Present(r Renderer, f Frame) error {
	r.BeginFrame()
	for _, cmd := range f.Commands {
		r.Submit(cmd)
	}
	return r.EndFrame()
}

// commandCapacity covers every slot of every pool plus the fixed quads.
const commandCapacity = 1 + MaxEnemies + MaxGems + 1 + 2 + MaxBullets + MaxDamageTexts + 2 + 8

var noTiles = Vec2{X: 1, Y: 1}

// bodyCommand converts b into camera space, computing the sheet UV from its
// animation frame, a texture scroll and a tiling factor.
func bodyCommand(b *Body, layer Layer, cam, scroll, tiles Vec2) DrawCommand {
	frames := b.Anim.Frames
	if frames < 1 {
		frames = 1
	}
	frameW := 1 / float32(frames)

	scale := b.Scale
	if b.Flipped {
		scale.X = -scale.X
	}

	return DrawCommand{
		Kind:    b.Draw,
		Sheet:   b.Sheet,
		Layer:   layer,
		Pos:     b.Pos.Sub(cam),
		Scale:   scale,
		Flipped: b.Flipped,
		UV: UV{
			OffsetX: float32(b.Anim.Frame)*frameW + scroll.X,
			OffsetY: scroll.Y,
			ScaleX:  frameW * tiles.X,
			ScaleY:  tiles.Y,
		},
		Frame: b.Anim.Frame,
		Tint:  b.Tint,
	}
}

// barCommands emits the track and then the fill of a gauge.
func barCommands(cmds []DrawCommand, bar *Bar, layer Layer, cam Vec2) []DrawCommand {
	left := bar.Origin.Sub(cam)
	track := DrawCommand{
		Kind:  DrawRect,
		Layer: layer,
		Pos:   Vec2{X: left.X + bar.Width/2, Y: left.Y},
		Scale: Vec2{X: bar.Width, Y: bar.Height},
		UV:    UV{ScaleX: 1, ScaleY: 1},
		Tint:  bar.Track,
	}
	fillW := bar.Width * bar.Ratio
	fill := track
	fill.Pos.X = left.X + fillW/2
	fill.Scale.X = fillW
	fill.Tint = bar.Fill
	return append(cmds, track, fill)
}

// buildFrame emits commands in the fixed layer order: background, enemies,
// gems, player, HP bar, bullets, damage texts, EXP bar, level indicator.
// Dead slots are skipped.
func (w *World) buildFrame() Frame {
	cam := w.Camera
	cmds := w.commands[:0]

	bg := &w.Background
	cmds = append(cmds, bodyCommand(&bg.Body, LayerBackground, cam, bg.UVScroll, bg.UVTiles))

	for i := range w.Enemies {
		if e := &w.Enemies[i]; !e.Dead {
			cmds = append(cmds, bodyCommand(&e.Body, LayerEnemies, cam, Vec2{}, noTiles))
		}
	}
	for i := range w.Gems {
		if g := &w.Gems[i]; !g.Dead {
			cmds = append(cmds, bodyCommand(&g.Body, LayerGems, cam, Vec2{}, noTiles))
		}
	}

	cmds = append(cmds, bodyCommand(&w.Player.Body, LayerPlayer, cam, Vec2{}, noTiles))
	cmds = barCommands(cmds, &w.HPBar, LayerHPBar, cam)

	for i := range w.Bullets {
		if b := &w.Bullets[i]; !b.Dead {
			cmds = append(cmds, bodyCommand(&b.Body, LayerBullets, cam, Vec2{}, noTiles))
		}
	}
	for i := range w.DamageTexts {
		if d := &w.DamageTexts[i]; !d.Dead {
			cmds = append(cmds, bodyCommand(&d.Body, LayerDamageTexts, cam, Vec2{}, noTiles))
		}
	}

	cmds = barCommands(cmds, &w.ExpBar, LayerExpBar, cam)
	cmds = w.levelCommands(cmds, cam)

	w.commands = cmds
	return Frame{
		Commands: cmds,
		HUD:      w.HUD,
		Camera:   cam,
	}
}

// levelCommands draws the level as digit sprites, left to right.
func (w *World) levelCommands(cmds []DrawCommand, cam Vec2) []DrawCommand {
	size := w.Cfg.LevelUIScale
	origin := cam.Add(w.Cfg.LevelUIOffset)

	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], int64(w.Player.Level), 10)
	for k, c := range digits {
		body := Body{
			Pos:   Vec2{X: origin.X + float32(k)*size*0.8, Y: origin.Y},
			Scale: Vec2{X: size, Y: size},
			Tint:  RGBA{1, 0.85, 0.3, 1},
			Anim:  Animation{Frame: int(c - '0'), Frames: DigitFrames, Duration: frozen},
			Draw:  DrawSprite,
			Sheet: SheetDigits,
		}
		cmds = append(cmds, bodyCommand(&body, LayerLevelUI, cam, Vec2{}, noTiles))
	}
	return cmds
}
