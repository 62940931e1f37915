package world

import "survivors-lab/internal/shared/input"

func newPlayer(cfg Config) Player {
	return Player{
		Body: Body{
			Scale: Vec2{X: cfg.PlayerScale, Y: cfg.PlayerScale},
			Tint:  White,
			Anim:  newAnimation(cfg.PlayerFrames, cfg.FrameDuration),
			Draw:  DrawSprite,
			Sheet: SheetPlayer,
		},
		BaseSpeed: cfg.PlayerSpeed,
		Speed:     cfg.PlayerSpeed,
		Radius:    cfg.PlayerRadius,

		HP:    cfg.PlayerMaxHP,
		MaxHP: cfg.PlayerMaxHP,

		Level:  1,
		MaxExp: cfg.PlayerBaseMaxExp,
	}
}

// update moves the player at Speed along each held axis. World y points up.
// Left faces the sprite left, right faces it back; right wins when both are held.
func (p *Player) update(dt float32, in input.State) {
	step := p.Speed * dt
	if in.Up {
		p.Pos.Y += step
	}
	if in.Down {
		p.Pos.Y -= step
	}
	if in.Left {
		p.Pos.X -= step
		p.Flipped = true
	}
	if in.Right {
		p.Pos.X += step
		p.Flipped = false
	}
}

// clampTo keeps the player inside the square [-bound, bound]². Each axis is
// clamped on its own so diagonal movement slides along a wall.
func (p *Player) clampTo(bound float32) {
	p.Pos.X = clamp(p.Pos.X, -bound, bound)
	p.Pos.Y = clamp(p.Pos.Y, -bound, bound)
}
