// Package sim implements the pong match simulation: ball physics, the
// AI opponent, power-ups and the match state machine. It contains pure
// logic with no platform dependencies; each tick transforms an
// immutable State value into the next one plus a list of events.
package sim

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Phase describes the match state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// Ball holds the ball state. Position and velocity are offsets from
// the court center in court units; AgeTicks counts ticks since the
// last spawn and gates power-up spawning.
type Ball struct {
	Pos      core.Vec2
	Vel      core.Vec2
	AgeTicks int
}

// Paddle holds one paddle's state. Y is the vertical offset from the
// court center. Scale multiplies the paddle's collision half-height
// while a power-up buff is active; BuffUntil is the tick at which the
// buff reverts (0 when no buff is active).
type Paddle struct {
	Y         float64
	Scale     float64
	BuffUntil int
}

// PowerUp is the single optional pickup on the court.
type PowerUp struct {
	Pos     core.Vec2
	Present bool
}

// State is the complete simulation state for one tick. It is a value
// type: stepping the simulation produces a new State and never mutates
// the previous one, which keeps the presentation layer decoupled and
// the tests deterministic.
type State struct {
	Tick int

	Ball    Ball
	Left    Paddle
	Right   Paddle
	PowerUp PowerUp

	LeftScore  int
	RightScore int

	Phase      Phase
	LastHitter core.Side // Paddle that most recently struck the ball
	LastScorer core.Side // Winner of the most recent point
	Winner     core.Side // Set when Phase is GameOver
}

// paddle returns the paddle for a side.
func (s *State) paddle(side core.Side) *Paddle {
	if side == core.SideRight {
		return &s.Right
	}
	return &s.Left
}

// newState returns the initial state: scores zero, paddles centered at
// scale 1.0, ball served from the center with the fixed initial
// velocity, no power-up.
func newState(r rules) State {
	return State{
		Ball:  Ball{Vel: r.initialVel},
		Left:  Paddle{Scale: 1.0},
		Right: Paddle{Scale: 1.0},
		Phase: PhasePlaying,
	}
}

// respawnBall resets the ball to the center with the fixed initial
// velocity and clears any in-flight power-up. Scores are not touched.
func respawnBall(s State, r rules) State {
	s.Ball = Ball{Vel: r.initialVel}
	s.PowerUp = PowerUp{}
	return s
}

// paddleLimit returns the legal travel range for a paddle with the
// given scale: the paddle must stay fully inside the bounce walls.
func paddleLimit(scale float64, r rules) float64 {
	return r.halfH - r.padHalfH*scale
}

// clampPaddleY restricts an uncontrolled position command to the legal
// travel range. Out-of-range input is clamped, never rejected.
func clampPaddleY(y, scale float64, r rules) float64 {
	limit := paddleLimit(scale, r)
	return core.ClampF(y, -limit, limit)
}
