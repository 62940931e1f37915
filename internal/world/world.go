package world

import "survivors-lab/internal/shared/input"

var (
	hpTrack  = RGBA{0.25, 0.05, 0.05, 1}
	hpFill   = RGBA{0.9, 0.15, 0.15, 1}
	expTrack = RGBA{0.05, 0.1, 0.25, 1}
	expFill  = RGBA{0.3, 0.6, 1, 1}
)

// NewWorld builds the initial scene: the player at the origin, every enemy
// alive on the spawn grid and every other pool empty.
func NewWorld(cfg Config) *World {
	w := &World{
		Cfg:      cfg,
		Player:   newPlayer(cfg),
		commands: make([]DrawCommand, 0, commandCapacity),
	}

	for i := range w.Enemies {
		w.Enemies[i] = newEnemy(cfg, spawnPoint(i))
	}
	killAll(w.Bullets[:])
	killAll(w.Gems[:])
	killAll(w.DamageTexts[:])

	w.Background = Decoration{
		Body: Body{
			Scale: Vec2{X: cfg.BackgroundScale, Y: cfg.BackgroundScale},
			Tint:  White,
			Anim:  newAnimation(1, frozen),
			Draw:  DrawSprite,
			Sheet: SheetBackground,
		},
		UVTiles: Vec2{X: cfg.BackgroundTiles, Y: cfg.BackgroundTiles},
	}

	w.HPBar = Bar{Width: cfg.HPBarWidth, Height: cfg.BarHeight, Track: hpTrack, Fill: hpFill}
	w.ExpBar = Bar{Width: cfg.ExpBarWidth, Height: cfg.BarHeight, Track: expTrack, Fill: expFill}

	w.updateCamera()
	w.scrollBackground()
	w.updateUI()
	return w
}

// Reset rebuilds the world from its current Config, reusing the command
// buffer.
func (w *World) Reset() {
	buf := w.commands
	*w = *NewWorld(w.Cfg)
	if cap(buf) >= commandCapacity {
		w.commands = buf[:0]
	}
}

// Frame rebuilds the draw list for the current state without advancing it.
func (w *World) Frame() Frame {
	return w.buildFrame()
}

// Step advances the simulation by dt seconds. dt is used as given.
func (w *World) Step(dt float32, in input.State) Frame {
	w.Elapsed += dt

	w.updateContact(dt)
	w.Player.update(dt, in)
	w.Player.clampTo(w.Cfg.WorldBound)
	w.updateCamera()
	w.scrollBackground()

	// bullets resolve before enemies move so this step's kills neither chase
	// nor separate
	w.updateFiring(dt)
	w.updateBullets(dt)

	w.updateEnemies(dt)
	w.separateEnemies()

	w.updateGems()
	w.updateDamageTexts(dt)

	w.updateUI()
	w.advanceAnimations(dt)

	return w.buildFrame()
}

// Alive reports the live record count per pool.
func (w *World) Alive() (enemies, bullets, gems, texts int) {
	return countAlive(w.Enemies[:]), countAlive(w.Bullets[:]),
		countAlive(w.Gems[:]), countAlive(w.DamageTexts[:])
}
