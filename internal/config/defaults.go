package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:         100,
			Height:        10,
			Speed:         8,
			BottomOffset:  30,
			GrowWidth:     150,
			ShrinkWidth:   60,
			LaserCooldown: 15,
		},
		Ball: BallConfig{
			Size:      15,
			SmallSize: 10,
			Speed:     6,
			SlowSpeed: 4,
		},
		Bricks: BrickConfig{
			Width:   75,
			Height:  20,
			Padding: 5,
			Top:     50,
			Points:  10,
			Colors:  []string{"red", "orange", "gold", "green"},
		},
		PowerUps: PowerUpConfig{
			DropChance:   0.3,
			FallSpeed:    3,
			Width:        30,
			Height:       15,
			MessageTicks: 120, // 2 seconds at 60 FPS
		},
		Laser: LaserConfig{
			Speed:  10,
			Width:  4,
			Height: 15,
			Offset: 30,
		},
		Effects: EffectsConfig{
			BounceParticles:   5,
			BrickParticles:    15,
			LaserParticles:    10,
			ParticleDecay:     0.1,
			FireworkParticles: 40,
			FireworkMinDelay:  20,
			FireworkMaxDelay:  50,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Audio: AudioConfig{
			Enabled:   true,
			SoundsDir: "sounds",
			Volume:    0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
