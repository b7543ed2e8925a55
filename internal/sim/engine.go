package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Mode selects who drives the right paddle.
type Mode string

const (
	ModeVsAI      Mode = "vs-ai"
	ModeTwoPlayer Mode = "two-player"
)

// ParseMode validates a user-supplied mode name. An empty string
// selects vs-AI.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "vs-ai", "vsai", "ai":
		return ModeVsAI, true
	case "two-player", "2p", "pvp":
		return ModeTwoPlayer, true
	default:
		return "", false
	}
}

// rules holds the per-match constants derived from the configuration,
// mode, difficulty and tick rate. Durations configured in seconds are
// converted to ticks here so the step functions only deal in ticks.
type rules struct {
	halfW, halfH float64
	ballSize     float64
	ballHalf     float64
	puSize       float64
	padHalfH     float64

	initialVel core.Vec2
	maxSpeed   float64
	maxVY      float64
	ramp       float64
	hitSpeedup float64
	spinKick   float64
	zone       float64

	winScore int

	buffScale       float64
	buffTicks       int
	minAgeTicks     int
	spawnCheckTicks int
	spawnOneIn      int

	aiSpeed      float64
	aiPrediction float64

	twoPlayer bool
}

func buildRules(cfg config.PongConfig, mode Mode, level config.AILevel, tickRate int) rules {
	if tickRate <= 0 {
		tickRate = 60
	}
	return rules{
		halfW:    cfg.Court.Width / 2,
		halfH:    cfg.Court.Height / 2,
		ballSize: cfg.Court.BallSize,
		ballHalf: cfg.Court.BallSize / 2,
		puSize:   cfg.Court.PowerUpSize,
		padHalfH: cfg.Paddles.Height / 2,

		initialVel: core.Vec2{X: cfg.Physics.InitialVX, Y: cfg.Physics.InitialVY},
		maxSpeed:   cfg.Physics.MaxSpeed,
		maxVY:      cfg.Physics.MaxVerticalSpeed,
		ramp:       cfg.Physics.SpeedRamp,
		hitSpeedup: cfg.Physics.HitSpeedup,
		spinKick:   cfg.Physics.SpinKick,
		zone:       cfg.Physics.PaddleZone,

		winScore: cfg.Gameplay.WinScore,

		buffScale:       cfg.PowerUps.BuffScale,
		buffTicks:       int(cfg.PowerUps.BuffSeconds * float64(tickRate)),
		minAgeTicks:     int(cfg.PowerUps.MinBallAge * float64(tickRate)),
		spawnCheckTicks: tickRate,
		spawnOneIn:      cfg.PowerUps.SpawnOneIn,

		aiSpeed:      level.Speed,
		aiPrediction: level.Prediction,

		twoPlayer: mode == ModeTwoPlayer,
	}
}

// StepResult is returned by Engine.Step after each simulation tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Engine owns the current match state and drives it one fixed tick at
// a time. All state transitions happen synchronously inside Step;
// there is no concurrent mutation, and input position commands are
// last-write-wins values read at the start of the next tick.
type Engine struct {
	cfg   config.PongConfig
	mode  Mode
	level config.AILevel

	r      rules
	rng    Rand
	state  State
	paused bool
}

// New creates an engine for the given configuration, mode and
// difficulty. Reset must be called before the first Step.
func New(cfg config.PongConfig, mode Mode, diff config.Difficulty) *Engine {
	return &Engine{
		cfg:   cfg,
		mode:  mode,
		level: diff.Level(cfg),
	}
}

// Mode returns the match mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Reset initializes or restarts the match. The runtime config supplies
// the tick rate and the RNG seed for deterministic replays.
func (e *Engine) Reset(rt core.RuntimeConfig) {
	e.r = buildRules(e.cfg, e.mode, e.level, rt.TickRate)
	e.rng = rand.New(rand.NewSource(rt.Seed))
	e.state = newState(e.r)
	e.paused = false
}

// SetRand replaces the random source used for power-up spawning.
// Call after Reset; intended for deterministic tests.
func (e *Engine) SetRand(rng Rand) {
	e.rng = rng
}

// Step advances the match by one fixed tick: paddle input, ball
// physics, power-up lifecycle, AI movement, then match scoring.
func (e *Engine) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) {
		e.paused = !e.paused
	}

	if e.state.Phase == PhaseGameOver {
		// Terminal until an explicit restart.
		if in.Has(core.ActionRestart) {
			e.state = newState(e.r)
			e.paused = false
		}
		return StepResult{Snapshot: e.Snapshot()}
	}

	if e.paused {
		return StepResult{Snapshot: e.Snapshot()}
	}

	s := e.state
	s.Tick++

	// Paddle position commands. Unconstrained drag input is clamped to
	// the legal travel range, never rejected.
	if y, ok := in.PaddleY(core.SideLeft); ok {
		s.Left.Y = clampPaddleY(y, s.Left.Scale, e.r)
	}
	if e.r.twoPlayer {
		if y, ok := in.PaddleY(core.SideRight); ok {
			s.Right.Y = clampPaddleY(y, s.Right.Scale, e.r)
		}
	}

	s, events := stepBall(s, e.r)

	// Power-up lifecycle: pickups from this tick's physics, the slow
	// spawn cadence, then buff expiry.
	for _, ev := range events {
		if ev.Type == EventPowerUpPicked {
			s = applyPickup(s, e.r)
		}
	}
	if s.Tick%e.r.spawnCheckTicks == 0 {
		var spawned []Event
		s, spawned = maybeSpawnPowerUp(s, e.r, e.rng)
		events = append(events, spawned...)
	}
	var expired []Event
	s, expired = expireBuffs(s)
	events = append(events, expired...)

	if !e.r.twoPlayer {
		s = stepAI(s, e.r)
	}

	for _, ev := range events {
		if ev.Type == EventScore {
			var over []Event
			s, over = applyScore(s, e.r, ev.Side)
			events = append(events, over...)
		}
	}

	e.state = s
	return StepResult{Snapshot: e.Snapshot(), Events: events}
}

// State returns a copy of the current simulation state.
func (e *Engine) State() State {
	return e.state
}

// Paused reports whether the match is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// CourtWidth returns the court width in court units.
func (e *Engine) CourtWidth() float64 {
	return e.cfg.Court.Width
}

// CourtHeight returns the court height in court units.
func (e *Engine) CourtHeight() float64 {
	return e.cfg.Court.Height
}

// PaddleHeight returns the unbuffed paddle height in court units.
func (e *Engine) PaddleHeight() float64 {
	return e.cfg.Paddles.Height
}
