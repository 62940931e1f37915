package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is tried when no explicit tuning file is given.
const DefaultConfigPath = "configs/survivors.yaml"

type Config struct {
	// World / camera
	WorldBound      float32 `yaml:"world_bound"`  // player clamp half-extent
	CameraBound     float32 `yaml:"camera_bound"` // camera clamp half-extent
	BackgroundScale float32 `yaml:"background_scale"`
	BackgroundTiles float32 `yaml:"background_tiles"`

	// Player
	PlayerSpeed        float32 `yaml:"player_speed"`
	PlayerMaxHP        float32 `yaml:"player_max_hp"`
	PlayerRadius       float32 `yaml:"player_radius"`
	PlayerScale        float32 `yaml:"player_scale"`
	PlayerFrames       int     `yaml:"player_frames"`
	PlayerHitSlow      float32 `yaml:"player_hit_slow"`    // speed multiplier while touched
	PlayerContactDPS   float32 `yaml:"player_contact_dps"` // hp per second while touched
	PlayerBaseMaxExp   float32 `yaml:"player_base_max_exp"`
	PlayerMaxExpGrowth float32 `yaml:"player_max_exp_growth"`
	CascadeLevelUps    bool    `yaml:"cascade_level_ups"`

	// Enemy
	EnemySpeed   float32 `yaml:"enemy_speed"`
	EnemyMaxHP   float32 `yaml:"enemy_max_hp"`
	EnemyRadius  float32 `yaml:"enemy_radius"`
	EnemyScaleX  float32 `yaml:"enemy_scale_x"`
	EnemyScaleY  float32 `yaml:"enemy_scale_y"`
	EnemyFrames  int     `yaml:"enemy_frames"`
	EnemyMinDist float32 `yaml:"enemy_min_dist"` // separation zero guard

	// Bullets
	FireInterval   float32 `yaml:"fire_interval"`
	BulletSpeed    float32 `yaml:"bullet_speed"`
	BulletDamage   float32 `yaml:"bullet_damage"`
	BulletRadius   float32 `yaml:"bullet_radius"`
	BulletScale    float32 `yaml:"bullet_scale"`
	BulletLifetime float32 `yaml:"bullet_lifetime"`

	// Gems
	GemExp          float32 `yaml:"gem_exp"`
	GemPickupRadius float32 `yaml:"gem_pickup_radius"`
	GemScale        float32 `yaml:"gem_scale"`

	// Damage numbers
	DamageTextRise  float32 `yaml:"damage_text_rise"`
	DamageTextLife  float32 `yaml:"damage_text_life"`
	DamageTextScale float32 `yaml:"damage_text_scale"`

	// Animation
	FrameDuration float32 `yaml:"frame_duration"`

	// HUD (camera-space offsets of the left edge / centre)
	HPBarOffset   Vec2    `yaml:"hp_bar_offset"`
	HPBarWidth    float32 `yaml:"hp_bar_width"`
	ExpBarOffset  Vec2    `yaml:"exp_bar_offset"`
	ExpBarWidth   float32 `yaml:"exp_bar_width"`
	BarHeight     float32 `yaml:"bar_height"`
	LevelUIOffset Vec2    `yaml:"level_ui_offset"`
	LevelUIScale  float32 `yaml:"level_ui_scale"`
}

func DefaultConfig() Config {
	return Config{
		WorldBound:      4.5,
		CameraBound:     4.0,
		BackgroundScale: 2.0,
		BackgroundTiles: 4.0,

		PlayerSpeed:        0.5,
		PlayerMaxHP:        100,
		PlayerRadius:       0.15,
		PlayerScale:        0.45,
		PlayerFrames:       30,
		PlayerHitSlow:      0.6,
		PlayerContactDPS:   5,
		PlayerBaseMaxExp:   100,
		PlayerMaxExpGrowth: 1.5,

		EnemySpeed:   0.25,
		EnemyMaxHP:   30,
		EnemyRadius:  0.04,
		EnemyScaleX:  0.1,
		EnemyScaleY:  0.15,
		EnemyFrames:  18,
		EnemyMinDist: 0.0001,

		FireInterval:   0.5,
		BulletSpeed:    1.5,
		BulletDamage:   15,
		BulletRadius:   0.02,
		BulletScale:    0.04,
		BulletLifetime: 3,

		GemExp:          20,
		GemPickupRadius: 0.15,
		GemScale:        0.05,

		DamageTextRise:  0.5,
		DamageTextLife:  0.5,
		DamageTextScale: 0.06,

		FrameDuration: 0.033,

		HPBarOffset:   Vec2{X: -0.95, Y: 0.9},
		HPBarWidth:    0.6,
		ExpBarOffset:  Vec2{X: -0.95, Y: -0.92},
		ExpBarWidth:   1.9,
		BarHeight:     0.04,
		LevelUIOffset: Vec2{X: 0.85, Y: 0.88},
		LevelUIScale:  0.08,
	}
}

// LoadConfig returns the tuning for a run.
// Search order: path -> DefaultConfigPath -> DefaultConfig().
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		return decodeConfig(cfg, data, path)
	}

	data, err := os.ReadFile(DefaultConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", DefaultConfigPath, err)
	}
	return decodeConfig(cfg, data, DefaultConfigPath)
}

func decodeConfig(cfg Config, data []byte, source string) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// Validate rejects tunings the step cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"world_bound", c.WorldBound},
		{"camera_bound", c.CameraBound},
		{"background_scale", c.BackgroundScale},
		{"background_tiles", c.BackgroundTiles},
		{"player_speed", c.PlayerSpeed},
		{"player_max_hp", c.PlayerMaxHP},
		{"player_radius", c.PlayerRadius},
		{"player_base_max_exp", c.PlayerBaseMaxExp},
		{"enemy_speed", c.EnemySpeed},
		{"enemy_max_hp", c.EnemyMaxHP},
		{"enemy_radius", c.EnemyRadius},
		{"fire_interval", c.FireInterval},
		{"bullet_speed", c.BulletSpeed},
		{"bullet_lifetime", c.BulletLifetime},
		{"gem_pickup_radius", c.GemPickupRadius},
		{"damage_text_life", c.DamageTextLife},
		{"frame_duration", c.FrameDuration},
	}
	var errs []error
	for _, p := range positive {
		if !(p.v > 0) {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", p.name, p.v))
		}
	}
	if c.PlayerFrames < 1 {
		errs = append(errs, fmt.Errorf("player_frames must be >= 1, got %d", c.PlayerFrames))
	}
	if c.EnemyFrames < 1 {
		errs = append(errs, fmt.Errorf("enemy_frames must be >= 1, got %d", c.EnemyFrames))
	}
	if c.PlayerMaxExpGrowth < 1 {
		errs = append(errs, fmt.Errorf("player_max_exp_growth must be >= 1, got %v", c.PlayerMaxExpGrowth))
	}
	if c.CameraBound > c.WorldBound {
		errs = append(errs, fmt.Errorf("camera_bound %v exceeds world_bound %v", c.CameraBound, c.WorldBound))
	}
	return errors.Join(errs...)
}
