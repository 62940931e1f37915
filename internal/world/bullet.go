package world

// defaultHeading is used while no enemy is alive, so bullets never stall.
var defaultHeading = Vec2{X: 0, Y: 1}

// fire places a bullet at pos. A full pool drops the shot.
func (w *World) fire(pos Vec2) int {
	i := acquire(w.Bullets[:])
	if i == NoSlot {
		w.Stats.DroppedSpawns++
		return NoSlot
	}

	cfg := w.Cfg
	w.Bullets[i] = Bullet{
		Body: Body{
			Pos:   pos,
			Scale: Vec2{X: cfg.BulletScale, Y: cfg.BulletScale},
			Tint:  RGBA{1, 0.9, 0.2, 1},
			Anim:  newAnimation(1, cfg.FrameDuration),
			Draw:  DrawCircle,
		},
		Speed:  cfg.BulletSpeed,
		Damage: cfg.BulletDamage,
	}
	w.Stats.BulletsFired++
	return i
}

// updateFiring fires at most one bullet from the player per step.
func (w *World) updateFiring(dt float32) {
	w.fireTimer += dt
	if w.fireTimer < w.Cfg.FireInterval {
		return
	}
	w.fireTimer -= w.Cfg.FireInterval
	if w.fireTimer >= w.Cfg.FireInterval {
		// one shot per step; drop the backlog
		w.fireTimer = 0
	}
	w.fire(w.Player.Pos)
}

// updateBullets homes every live bullet on the nearest living enemy and
// resolves hits. Targets are looked up fresh for each bullet every step.
func (w *World) updateBullets(dt float32) {
	hitRange := w.Cfg.BulletRadius + w.Cfg.EnemyRadius

	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Dead {
			continue
		}

		b.Life += dt
		if b.Life >= w.Cfg.BulletLifetime {
			release(w.Bullets[:], i)
			continue
		}

		target := w.nearestLivingEnemy(b.Pos)
		if target == NoSlot {
			b.Pos = b.Pos.Add(defaultHeading.Mul(b.Speed * dt))
			continue
		}

		e := &w.Enemies[target]
		to := e.Pos.Sub(b.Pos)
		dist := to.Len()
		step := b.Speed * dt
		if dist > 0 {
			if step >= dist {
				b.Pos = e.Pos
			} else {
				b.Pos = b.Pos.Add(to.Mul(step / dist))
			}
			b.Flipped = to.X < 0
		}

		if Dist(b.Pos, e.Pos) < hitRange {
			w.resolveHit(i, target)
		}
	}
}
