// Package config provides YAML-based configuration loading and
// difficulty presets for the pong simulation.
package config

// PongConfig contains all tunable parameters for a match.
// Coordinates are court units with the origin at the court center;
// per-tick values assume the configured tick rate (60 by default).
type PongConfig struct {
	Court    CourtConfig    `yaml:"court"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	PowerUps PowerUpConfig  `yaml:"power_ups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	AI       AIConfig       `yaml:"ai"`
}

// CourtConfig defines the play area and object sizes.
type CourtConfig struct {
	Width       float64 `yaml:"width"`        // Distance between the scoring edges
	Height      float64 `yaml:"height"`       // Distance between the bounce walls
	BallSize    float64 `yaml:"ball_size"`    // Ball diameter
	PowerUpSize float64 `yaml:"powerup_size"` // Power-up diameter
}

// PhysicsConfig defines ball motion parameters.
type PhysicsConfig struct {
	InitialVX        float64 `yaml:"initial_vx"`         // Horizontal speed after every spawn
	InitialVY        float64 `yaml:"initial_vy"`         // Vertical speed after every spawn
	MaxSpeed         float64 `yaml:"max_speed"`          // Speed magnitude cap
	MaxVerticalSpeed float64 `yaml:"max_vertical_speed"` // |vy| cap, applied every tick
	SpeedRamp        float64 `yaml:"speed_ramp"`         // Magnitude added per tick while below max_speed
	HitSpeedup       float64 `yaml:"hit_speedup"`        // |vx| multiplier on every paddle hit
	SpinKick         float64 `yaml:"spin_kick"`          // vy added per unit of normalized hit offset
	PaddleZone       float64 `yaml:"paddle_zone"`        // Collision zone depth from each scoring edge
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PowerUpConfig defines power-up spawning and the paddle buff.
type PowerUpConfig struct {
	SpawnOneIn  int     `yaml:"spawn_one_in"`  // Second random gate: 1-in-N after a coin flip
	MinBallAge  float64 `yaml:"min_ball_age"`  // Seconds the ball must survive before spawns begin
	BuffScale   float64 `yaml:"buff_scale"`    // Paddle scale while the buff is active
	BuffSeconds float64 `yaml:"buff_seconds"`  // Buff duration
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore int `yaml:"win_score"` // First to this many points wins
}

// AIConfig maps each difficulty to its tracking parameters.
type AIConfig struct {
	Easy   AILevel `yaml:"easy"`
	Medium AILevel `yaml:"medium"`
	Hard   AILevel `yaml:"hard"`
}

// AILevel defines the AI paddle behavior for one difficulty.
// Prediction exaggerates the trajectory lookahead rather than making
// it more accurate, so hard difficulty overcorrects aggressively.
type AILevel struct {
	Speed      float64 `yaml:"speed"`      // Paddle movement per tick
	Prediction float64 `yaml:"prediction"` // Lookahead overshoot factor
}
