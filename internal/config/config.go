// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Config contains all tunable parameters of the game.
// Distances are in playfield units, speeds in units per tick.
type Config struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Bricks     BrickConfig      `yaml:"bricks" toml:"bricks"`
	PowerUps   PowerUpConfig    `yaml:"powerups" toml:"powerups"`
	Laser      LaserConfig      `yaml:"laser" toml:"laser"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig defines the logical playfield the simulation runs in.
// The renderer scales it to whatever the terminal offers.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry and power-up variants.
type PaddleConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	BottomOffset  float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from paddle bottom to playfield bottom
	GrowWidth     float64 `yaml:"grow_width" toml:"grow_width"`
	ShrinkWidth   float64 `yaml:"shrink_width" toml:"shrink_width"`
	LaserCooldown int     `yaml:"laser_cooldown" toml:"laser_cooldown"` // Ticks between shots
}

// BallConfig defines ball size and speed.
type BallConfig struct {
	Size      float64 `yaml:"size" toml:"size"`
	SmallSize float64 `yaml:"small_size" toml:"small_size"`
	Speed     float64 `yaml:"speed" toml:"speed"`           // Per-axis speed
	SlowSpeed float64 `yaml:"slow_speed" toml:"slow_speed"` // Per-axis speed after the slow power-up
}

// BrickConfig defines the brick grid.
type BrickConfig struct {
	Width   float64  `yaml:"width" toml:"width"`
	Height  float64  `yaml:"height" toml:"height"`
	Padding float64  `yaml:"padding" toml:"padding"`
	Top     float64  `yaml:"top" toml:"top"`
	Points  int      `yaml:"points" toml:"points"`
	Colors  []string `yaml:"colors" toml:"colors"` // Cycled by row
}

// PowerUpConfig defines power-up drops.
type PowerUpConfig struct {
	DropChance   float64 `yaml:"drop_chance" toml:"drop_chance"` // 0.0 - 1.0 per destroyed brick
	FallSpeed    float64 `yaml:"fall_speed" toml:"fall_speed"`
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	MessageTicks int     `yaml:"message_ticks" toml:"message_ticks"`
}

// LaserConfig defines laser shots.
type LaserConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Offset float64 `yaml:"offset" toml:"offset"` // Horizontal offset of each gun from paddle center
}

// EffectsConfig defines particle and firework effects.
type EffectsConfig struct {
	BounceParticles   int     `yaml:"bounce_particles" toml:"bounce_particles"`
	BrickParticles    int     `yaml:"brick_particles" toml:"brick_particles"`
	LaserParticles    int     `yaml:"laser_particles" toml:"laser_particles"`
	ParticleDecay     float64 `yaml:"particle_decay" toml:"particle_decay"` // Size lost per tick
	FireworkParticles int     `yaml:"firework_particles" toml:"firework_particles"`
	FireworkMinDelay  int     `yaml:"firework_min_delay" toml:"firework_min_delay"`
	FireworkMaxDelay  int     `yaml:"firework_max_delay" toml:"firework_max_delay"`
}

// GameplayConfig defines run rules.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled" toml:"enabled"`
	SoundsDir string  `yaml:"sounds_dir" toml:"sounds_dir"`
	Volume    float64 `yaml:"volume" toml:"volume"` // Base-2 gain steps: 0 unchanged, -1 half amplitude
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// Validate reports every invalid value in the configuration.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("paddle.grow_width", c.Paddle.GrowWidth)
	positive("paddle.shrink_width", c.Paddle.ShrinkWidth)
	positive("ball.size", c.Ball.Size)
	positive("ball.small_size", c.Ball.SmallSize)
	positive("ball.speed", c.Ball.Speed)
	positive("ball.slow_speed", c.Ball.SlowSpeed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("powerups.fall_speed", c.PowerUps.FallSpeed)
	positive("laser.speed", c.Laser.Speed)

	if c.Bricks.Padding < 0 {
		errs = append(errs, fmt.Errorf("bricks.padding must not be negative, got %v", c.Bricks.Padding))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, fmt.Errorf("bricks.points must not be negative, got %d", c.Bricks.Points))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks.colors must list at least one color"))
	}
	for _, name := range c.Bricks.Colors {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("bricks.colors: unknown color %q", name))
		}
	}
	if c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.drop_chance must be within [0, 1], got %v", c.PowerUps.DropChance))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Effects.FireworkMinDelay < 1 || c.Effects.FireworkMaxDelay < c.Effects.FireworkMinDelay {
		errs = append(errs, fmt.Errorf("effects firework delays must satisfy 1 <= min <= max, got %d..%d",
			c.Effects.FireworkMinDelay, c.Effects.FireworkMaxDelay))
	}
	if c.Audio.Volume < -10 || c.Audio.Volume > 2 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [-10, 2], got %v", c.Audio.Volume))
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %v", c.Difficulty.Scaling.SpeedMultiplier))
	}
	if c.Effects.ParticleDecay <= 0 {
		errs = append(errs, fmt.Errorf("effects.particle_decay must be positive, got %v", c.Effects.ParticleDecay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 7
	}
}
