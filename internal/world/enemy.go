package world

// spawnPoint is the initial grid slot of enemy i: five columns, rows above the player.
func spawnPoint(i int) Vec2 {
	return Vec2{
		X: float32(i%5)*0.5 - 1.0,
		Y: float32(i/5)*0.5 + 0.5,
	}
}

func newEnemy(cfg Config, pos Vec2) Enemy {
	return Enemy{
		Body: Body{
			Pos:   pos,
			Scale: Vec2{X: cfg.EnemyScaleX, Y: cfg.EnemyScaleY},
			Tint:  White,
			Anim:  newAnimation(cfg.EnemyFrames, cfg.FrameDuration),
			Draw:  DrawSprite,
			Sheet: SheetEnemy,
		},
		Speed:  cfg.EnemySpeed,
		Radius: cfg.EnemyRadius,
		HP:     cfg.EnemyMaxHP,
		MaxHP:  cfg.EnemyMaxHP,
	}
}

// update walks the enemy straight at target. A zero distance leaves it in place.
// It faces left only when the target is strictly to its left.
func (e *Enemy) update(dt float32, target Vec2) {
	to := target.Sub(e.Pos)
	e.Flipped = to.X < 0
	if dist := to.Len(); dist > 0 {
		e.Pos = e.Pos.Add(to.Mul(e.Speed * dt / dist))
	}
}
