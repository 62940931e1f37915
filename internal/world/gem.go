package world

// dropGem places an experience gem at pos. A full pool drops the gem.
func (w *World) dropGem(pos Vec2) int {
	i := acquire(w.Gems[:])
	if i == NoSlot {
		w.Stats.DroppedSpawns++
		return NoSlot
	}

	cfg := w.Cfg
	w.Gems[i] = Gem{
		Body: Body{
			Pos:   pos,
			Scale: Vec2{X: cfg.GemScale, Y: cfg.GemScale},
			Tint:  RGBA{0.3, 0.8, 1, 1},
			Anim:  newAnimation(1, cfg.FrameDuration),
			Draw:  DrawSprite,
			Sheet: SheetGem,
		},
		ExpValue: cfg.GemExp,
	}
	return i
}

// inPickupRange reports whether the player is close enough to collect g.
func (g *Gem) inPickupRange(p *Player, radius float32) bool {
	return Dist(p.Pos, g.Pos) < radius
}

// updateGems collects gems immediately, so a level gained here is visible to
// the HUD in the same step.
func (w *World) updateGems() {
	for i := range w.Gems {
		g := &w.Gems[i]
		if g.Dead {
			continue
		}
		if !g.inPickupRange(&w.Player, w.Cfg.GemPickupRadius) {
			continue
		}
		w.grantExp(g.ExpValue)
		release(w.Gems[:], i)
	}
}
