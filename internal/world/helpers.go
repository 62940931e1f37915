package world

import "math"

// ============================================================================
// PLAYER / ENEMY CONTACT
// ============================================================================

// updateContact recomputes the player's speed and tint and applies contact
// damage. One touching enemy is enough; several do not stack.
func (w *World) updateContact(dt float32) {
	p := &w.Player
	p.Speed = p.BaseSpeed

	if w.touchingEnemy() == NoSlot {
		p.Tint = White
		return
	}

	p.Speed = p.BaseSpeed * w.Cfg.PlayerHitSlow
	p.Tint = HitRed

	dmg := minf(w.Cfg.PlayerContactDPS*dt, p.HP)
	p.HP -= dmg
	w.Stats.DamageTaken += dmg
}

// touchingEnemy returns the first living enemy overlapping the player.
func (w *World) touchingEnemy() int {
	p := &w.Player
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead {
			continue
		}
		if Dist(p.Pos, e.Pos) < p.Radius+e.Radius {
			return i
		}
	}
	return NoSlot
}

// ============================================================================
// ENEMY MOVEMENT & SEPARATION
// ============================================================================

func (w *World) updateEnemies(dt float32) {
	target := w.Player.Pos
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead {
			continue
		}
		e.update(dt, target)
	}
}

// separateEnemies runs one relaxation pass over every living pair (i<j):
// overlapping pairs are pushed apart along their axis by half the overlap
// each. Pairs closer than EnemyMinDist are skipped.
func (w *World) separateEnemies() {
	minDist := w.Cfg.EnemyRadius * 2
	guard := w.Cfg.EnemyMinDist

	for i := range w.Enemies {
		a := &w.Enemies[i]
		if a.Dead {
			continue
		}
		for j := i + 1; j < len(w.Enemies); j++ {
			b := &w.Enemies[j]
			if b.Dead {
				continue
			}

			d := b.Pos.Sub(a.Pos)
			dist := d.Len()
			if dist >= minDist || dist <= guard {
				continue
			}

			overlap := minDist - dist
			push := d.Mul(overlap * 0.5 / dist)
			a.Pos = a.Pos.Sub(push)
			b.Pos = b.Pos.Add(push)
		}
	}
}

// ============================================================================
// COMBAT SYSTEM
// ============================================================================

// nearestLivingEnemy returns the index of the closest living enemy to p, or
// NoSlot. Ties go to the lowest index.
func (w *World) nearestLivingEnemy(p Vec2) int {
	best := NoSlot
	bestD2 := float32(math.MaxFloat32)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead {
			continue
		}
		d := e.Pos.Sub(p)
		d2 := d.X*d.X + d.Y*d.Y
		if best == NoSlot || d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best
}

// resolveHit applies bullet bi to enemy ei: damage, a damage number, and on
// death a gem at the enemy's last position. The bullet is spent.
func (w *World) resolveHit(bi, ei int) {
	b := &w.Bullets[bi]
	e := &w.Enemies[ei]

	e.HP -= b.Damage
	w.Stats.Hits++
	w.popDamageText(e.Pos, b.Damage)
	release(w.Bullets[:], bi)

	if e.HP <= 0 {
		e.HP = 0
		e.Dead = true
		w.Stats.EnemiesKilled++
		w.dropGem(e.Pos)
	}
}

// ============================================================================
// XP & LEVELING SYSTEM
// ============================================================================

// grantExp adds experience and applies the level-up rule. By default one
// pickup levels up at most once; CascadeLevelUps keeps levelling while the
// threshold is met.
func (w *World) grantExp(amount float32) {
	p := &w.Player
	p.Exp += amount
	w.Stats.ExpCollected += amount

	for p.Exp >= p.MaxExp {
		p.Exp -= p.MaxExp
		p.MaxExp *= w.Cfg.PlayerMaxExpGrowth
		p.Level++
		w.Stats.LevelUps++

		if !w.Cfg.CascadeLevelUps {
			break
		}
	}
}

// ============================================================================
// CAMERA & BACKGROUND
// ============================================================================

// updateCamera follows the player inside a tighter bound than the player's
// own clamp, so the player can approach the screen edge.
func (w *World) updateCamera() {
	b := w.Cfg.CameraBound
	w.Camera = Vec2{
		X: clamp(w.Player.Pos.X, -b, b),
		Y: clamp(w.Player.Pos.Y, -b, b),
	}
}

// scrollBackground pins the background quad to the camera and scrolls its
// texture so the tiles stay fixed in world space. Texture v grows downward.
func (w *World) scrollBackground() {
	bg := &w.Background
	bg.Pos = w.Camera

	perUnit := bg.UVTiles.X / w.Cfg.BackgroundScale
	bg.UVScroll = Vec2{
		X: frac(w.Camera.X * perUnit),
		Y: frac(-w.Camera.Y * perUnit),
	}
}

// ============================================================================
// UI & TIMERS
// ============================================================================

func (w *World) updateUI() {
	p := &w.Player
	w.HUD = HUD{
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		Exp:    p.Exp,
		MaxExp: p.MaxExp,
		Level:  p.Level,
	}

	w.HPBar.Origin = w.Camera.Add(w.Cfg.HPBarOffset)
	w.HPBar.Ratio = w.HUD.HPRatio()
	w.ExpBar.Origin = w.Camera.Add(w.Cfg.ExpBarOffset)
	w.ExpBar.Ratio = w.HUD.ExpRatio()
}

func (w *World) advanceAnimations(dt float32) {
	w.Background.Anim.Advance(dt)
	w.Player.Anim.Advance(dt)
	for i := range w.Enemies {
		if !w.Enemies[i].Dead {
			w.Enemies[i].Anim.Advance(dt)
		}
	}
	for i := range w.Bullets {
		if !w.Bullets[i].Dead {
			w.Bullets[i].Anim.Advance(dt)
		}
	}
	for i := range w.Gems {
		if !w.Gems[i].Dead {
			w.Gems[i].Anim.Advance(dt)
		}
	}
	for i := range w.DamageTexts {
		if !w.DamageTexts[i].Dead {
			w.DamageTexts[i].Anim.Advance(dt)
		}
	}
}

func frac(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}
