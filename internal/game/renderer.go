package game

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"

	"survivors-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var errNoTarget = errors.New("renderer has no target image")

var clearColor = color.NRGBA{15, 15, 18, 255}

// Flat colours for sprites whose sheet has not loaded.
var fallbackColors = map[world.SheetID]color.NRGBA{
	world.SheetBackground: {30, 30, 36, 255},
	world.SheetPlayer:     {80, 200, 120, 255},
	world.SheetEnemy:      {220, 80, 80, 255},
	world.SheetGem:        {240, 210, 80, 255},
	world.SheetNone:       {255, 255, 255, 255},
}

// SheetSource hands out loaded sprite sheets; nil means not loaded.
type SheetSource interface {
	Sheet(id world.SheetID) *ebiten.Image
}

// viewport maps camera space ([-1,1] on both axes, y up) to pixels.
type viewport struct {
	W, H float32
}

func (v viewport) toPixels(p world.Vec2) (float32, float32) {
	return (p.X + 1) / 2 * v.W, (1 - p.Y) / 2 * v.H
}

// quad returns the pixel rectangle covered by cmd.
func (v viewport) quad(cmd world.DrawCommand) (x, y, w, h float32) {
	cx, cy := v.toPixels(cmd.Pos)
	w = absf(cmd.Scale.X) * v.W / 2
	h = absf(cmd.Scale.Y) * v.H / 2
	return cx - w/2, cy - h/2, w, h
}

// Renderer draws world commands onto an ebiten image.
type Renderer struct {
	sheets SheetSource
	screen *ebiten.Image
	view   viewport
}

func NewRenderer(sheets SheetSource) *Renderer {
	return &Renderer{sheets: sheets}
}

// Target sets the image the next frame is drawn onto.
func (r *Renderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) BeginFrame() {
	if r.screen == nil {
		return
	}
	b := r.screen.Bounds()
	r.view = viewport{W: float32(b.Dx()), H: float32(b.Dy())}
	r.screen.Fill(clearColor)
}

func (r *Renderer) Submit(cmd world.DrawCommand) {
	if r.screen == nil {
		return
	}
	x, y, w, h := r.view.quad(cmd)
	if w <= 0 || h <= 0 {
		return
	}

	switch cmd.Kind {
	case world.DrawRect:
		vector.FillRect(r.screen, x, y, w, h, tintColor(color.NRGBA{255, 255, 255, 255}, cmd.Tint), false)
	case world.DrawCircle:
		vector.FillCircle(r.screen, x+w/2, y+h/2, minf(w, h)/2, tintColor(color.NRGBA{255, 255, 255, 255}, cmd.Tint), false)
	default:
		r.drawSprite(cmd, x, y, w, h)
	}
}

func (r *Renderer) EndFrame() error {
	if r.screen == nil {
		return errNoTarget
	}
	return nil
}

func (r *Renderer) drawSprite(cmd world.DrawCommand, x, y, w, h float32) {
	var sheet *ebiten.Image
	if r.sheets != nil {
		sheet = r.sheets.Sheet(cmd.Sheet)
	}

	if sheet == nil {
		if cmd.Sheet == world.SheetDigits {
			ebitenutil.DebugPrintAt(r.screen, strconv.Itoa(cmd.Frame), int(x+w/2)-3, int(y+h/2)-8)
			return
		}
		base, ok := fallbackColors[cmd.Sheet]
		if !ok {
			base = fallbackColors[world.SheetNone]
		}
		vector.FillRect(r.screen, x, y, w, h, tintColor(base, cmd.Tint), false)
		return
	}

	if cmd.UV.ScaleX > 1 || cmd.UV.ScaleY > 1 {
		r.drawTiled(sheet, cmd, x, y, w, h)
		return
	}

	ib := sheet.Bounds()
	src := srcRect(cmd.UV, ib.Dx(), ib.Dy())
	if src.Empty() {
		return
	}
	sub := sheet.SubImage(src.Add(ib.Min)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	sx := float64(w) / float64(src.Dx())
	sy := float64(h) / float64(src.Dy())
	if cmd.Flipped {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(float64(x+w), float64(y))
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(x), float64(y))
	}
	op.ColorScale.Scale(cmd.Tint.R, cmd.Tint.G, cmd.Tint.B, cmd.Tint.A)
	r.screen.DrawImage(sub, op)
}

// drawTiled repeats the whole sheet UV.Scale times across the quad, shifted
// by the UV offset, clipped to the quad.
func (r *Renderer) drawTiled(sheet *ebiten.Image, cmd world.DrawCommand, x, y, w, h float32) {
	tw := w / cmd.UV.ScaleX
	th := h / cmd.UV.ScaleY
	if tw < 1 || th < 1 {
		return
	}

	clip := image.Rect(int(x), int(y), int(math.Ceil(float64(x+w))), int(math.Ceil(float64(y+h))))
	dst, ok := r.screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	ib := sheet.Bounds()
	sx := float64(tw) / float64(ib.Dx())
	sy := float64(th) / float64(ib.Dy())

	ox := x - fracf(cmd.UV.OffsetX)*tw
	oy := y - fracf(cmd.UV.OffsetY)*th
	for ty := oy; ty < y+h; ty += th {
		for tx := ox; tx < x+w; tx += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(float64(tx), float64(ty))
			op.ColorScale.Scale(cmd.Tint.R, cmd.Tint.G, cmd.Tint.B, cmd.Tint.A)
			dst.DrawImage(sheet, op)
		}
	}
}

// srcRect converts a UV window into sheet pixels, clipped to the sheet.
func srcRect(uv world.UV, iw, ih int) image.Rectangle {
	x0 := int(math.Round(float64(fracf(uv.OffsetX) * float32(iw))))
	y0 := int(math.Round(float64(fracf(uv.OffsetY) * float32(ih))))
	x1 := x0 + int(math.Round(float64(absf(uv.ScaleX)*float32(iw))))
	y1 := y0 + int(math.Round(float64(absf(uv.ScaleY)*float32(ih))))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, iw, ih))
}

// tintColor multiplies base by t, channel by channel.
func tintColor(base color.NRGBA, t world.RGBA) color.NRGBA {
	mul := func(c uint8, f float32) uint8 {
		v := float32(c) * clamp01(f)
		return uint8(v + 0.5)
	}
	return color.NRGBA{
		R: mul(base.R, t.R),
		G: mul(base.G, t.G),
		B: mul(base.B, t.B),
		A: mul(base.A, t.A),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fracf(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}
