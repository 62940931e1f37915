package world

// World owns every simulated record. Records reference each other only by
// index, and only within a single step.
type World struct {
	Cfg Config

	Player      Player
	Enemies     [MaxEnemies]Enemy
	Bullets     [MaxBullets]Bullet
	Gems        [MaxGems]Gem
	DamageTexts [MaxDamageTexts]DamageText
	Background  Decoration

	Camera Vec2

	// HUD
	HUD    HUD
	HPBar  Bar
	ExpBar Bar

	// run state
	Elapsed   float32
	fireTimer float32

	// stats
	Stats Stats

	// reused every step
	commands []DrawCommand
}

// HUD is the per-step summary the shells print or draw.
type HUD struct {
	HP     float32
	MaxHP  float32
	Exp    float32
	MaxExp float32
	Level  int
}

// HPRatio is HP/MaxHP in [0,1].
func (h HUD) HPRatio() float32 { return ratio(h.HP, h.MaxHP) }

// ExpRatio is Exp/MaxExp in [0,1].
func (h HUD) ExpRatio() float32 { return ratio(h.Exp, h.MaxExp) }

// Bar is a screen-locked gauge: a track and a left-anchored fill.
type Bar struct {
	Origin Vec2 // world position of the left edge, vertical centre
	Width  float32
	Height float32
	Ratio  float32
	Track  RGBA
	Fill   RGBA
}

type Stats struct {
	EnemiesKilled int
	BulletsFired  int
	Hits          int
	DamageTaken   float32
	ExpCollected  float32
	LevelUps      int
	DroppedSpawns int // pool exhaustion, counted for telemetry only
}

func ratio(v, limit float32) float32 {
	if limit <= 0 {
		return 0
	}
	return clamp(v/limit, 0, 1)
}
