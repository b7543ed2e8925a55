package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// EventType enumerates the events a tick can emit.
type EventType int

const (
	// EventPaddleHit fires when the ball bounces off a paddle.
	// Side is the paddle that was hit.
	EventPaddleHit EventType = iota

	// EventScore fires when the ball exits a scoring edge.
	// Side is the scorer; the ball has already respawned.
	EventScore

	// EventPowerUpSpawned fires when a power-up appears at the court center.
	EventPowerUpSpawned

	// EventPowerUpPicked fires when the ball touches the power-up.
	// Side is the buff recipient (the last hitter).
	EventPowerUpPicked

	// EventBuffExpired fires when a paddle's size buff reverts.
	// Side is the paddle that shrank back.
	EventBuffExpired

	// EventMatchOver fires once when a score reaches the winning
	// threshold. Side is the winner.
	EventMatchOver
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventPaddleHit:
		return "PaddleHit"
	case EventScore:
		return "Score"
	case EventPowerUpSpawned:
		return "PowerUpSpawned"
	case EventPowerUpPicked:
		return "PowerUpPicked"
	case EventBuffExpired:
		return "BuffExpired"
	case EventMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Event is a notable occurrence within a single tick.
type Event struct {
	Type EventType
	Side core.Side
}
