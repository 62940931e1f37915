package world

import "math"

// glyphFor is the single digit shown for an amount of damage.
func glyphFor(damage float32) int {
	g := int(math.Floor(float64(damage))) % DigitFrames
	if g < 0 {
		g += DigitFrames
	}
	return g
}

// popDamageText shows the last digit of damage at pos.
func (w *World) popDamageText(pos Vec2, damage float32) int {
	i := acquire(w.DamageTexts[:])
	if i == NoSlot {
		w.Stats.DroppedSpawns++
		return NoSlot
	}

	cfg := w.Cfg
	w.DamageTexts[i] = DamageText{
		Body: Body{
			Pos:   pos,
			Scale: Vec2{X: cfg.DamageTextScale, Y: cfg.DamageTextScale},
			Tint:  RGBA{1, 1, 1, 1},
			Anim: Animation{
				Frame:    glyphFor(damage),
				Frames:   DigitFrames,
				Duration: frozen,
			},
			Draw:  DrawSprite,
			Sheet: SheetDigits,
		},
		MaxLife: cfg.DamageTextLife,
	}
	return i
}

// update floats the text upward and reports whether it has expired.
func (d *DamageText) update(dt, rise float32) bool {
	d.LifeTime += dt
	d.Pos.Y += rise * dt
	return d.LifeTime >= d.MaxLife
}

func (w *World) updateDamageTexts(dt float32) {
	for i := range w.DamageTexts {
		d := &w.DamageTexts[i]
		if d.Dead {
			continue
		}
		if d.update(dt, w.Cfg.DamageTextRise) {
			release(w.DamageTexts[:], i)
		}
	}
}
