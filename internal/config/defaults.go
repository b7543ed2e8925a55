package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the default match configuration.
func Default() PongConfig {
	return PongConfig{
		Court: CourtConfig{
			Width:       400,
			Height:      800,
			BallSize:    10,
			PowerUpSize: 30,
		},
		Physics: PhysicsConfig{
			InitialVX:        3,
			InitialVY:        3,
			MaxSpeed:         15,
			MaxVerticalSpeed: 8,
			SpeedRamp:        0.0005,
			HitSpeedup:       1.1,
			SpinKick:         5,
			PaddleZone:       50,
		},
		Paddles: PaddleConfig{
			Width:  10,
			Height: 100,
		},
		PowerUps: PowerUpConfig{
			SpawnOneIn:  10,
			MinBallAge:  3,
			BuffScale:   1.5,
			BuffSeconds: 5,
		},
		Gameplay: GameplayConfig{
			WinScore: 5,
		},
		AI: AIConfig{
			Easy:   AILevel{Speed: 2, Prediction: 0.1},
			Medium: AILevel{Speed: 4, Prediction: 0.6},
			Hard:   AILevel{Speed: 6, Prediction: 1.0},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
