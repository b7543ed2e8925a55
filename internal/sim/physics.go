package sim

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// stepBall advances the ball by one tick: integration, wall bounces,
// paddle collisions, scoring and the speed ramp. It returns the next
// state plus any paddle-hit, pickup and score events.
func stepBall(s State, r rules) (State, []Event) {
	var events []Event

	b := s.Ball
	b.Pos = b.Pos.Add(b.Vel)
	b.AgeTicks++

	// Bounce off the top/bottom walls only; the left/right edges score.
	wall := r.halfH - r.ballHalf
	if b.Pos.Y > wall {
		b.Pos.Y = wall
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y < -wall {
		b.Pos.Y = -wall
		b.Vel.Y = -b.Vel.Y
	}

	// Vertical speed cap, applied unconditionally as a post-bounce safety.
	b.Vel.Y = core.ClampF(b.Vel.Y, -r.maxVY, r.maxVY)

	// Paddle collisions. The zone check uses a fixed depth from each
	// scoring edge, and the velocity-direction guard keeps a ball that
	// already bounced from re-triggering while still inside the zone.
	leftEdge := -r.halfW + r.zone
	rightEdge := r.halfW - r.zone

	if b.Pos.X <= leftEdge && b.Vel.X < 0 {
		if hitsPaddle(b.Pos.Y, s.Left, r) {
			b = deflect(b, s.Left, r)
			b.Pos.X = leftEdge
			s.LastHitter = core.SideLeft
			events = append(events, Event{Type: EventPaddleHit, Side: core.SideLeft})
		}
	} else if b.Pos.X >= rightEdge && b.Vel.X > 0 {
		if hitsPaddle(b.Pos.Y, s.Right, r) {
			b = deflect(b, s.Right, r)
			b.Pos.X = rightEdge
			s.LastHitter = core.SideRight
			events = append(events, Event{Type: EventPaddleHit, Side: core.SideRight})
		}
	}

	// Scoring: a point and the respawn are atomic within the tick.
	// The respawned ball skips the pickup check and the speed ramp.
	if b.Pos.X > r.halfW {
		s.Ball = b
		s = respawnBall(s, r)
		return s, append(events, Event{Type: EventScore, Side: core.SideLeft})
	}
	if b.Pos.X < -r.halfW {
		s.Ball = b
		s = respawnBall(s, r)
		return s, append(events, Event{Type: EventScore, Side: core.SideRight})
	}

	// Power-up pickup by proximity. The buff itself is applied by the
	// power-up manager in response to the event.
	if s.PowerUp.Present && b.Pos.Dist(s.PowerUp.Pos) < (r.ballSize+r.puSize)/2 {
		s.PowerUp = PowerUp{}
		events = append(events, Event{Type: EventPowerUpPicked, Side: s.LastHitter})
	}

	// Speed ramp: creep toward the cap while preserving direction.
	speed := b.Vel.Len()
	if speed < r.maxSpeed {
		next := math.Min(speed+r.ramp, r.maxSpeed)
		b.Vel = core.FromPolar(next, b.Vel.Angle())
	}

	s.Ball = b
	return s, events
}

// hitsPaddle reports whether a ball at the given height overlaps the
// paddle, accounting for the current size buff.
func hitsPaddle(ballY float64, p Paddle, r rules) bool {
	return math.Abs(ballY-p.Y) < r.padHalfH*p.Scale+r.ballHalf
}

// deflect reverses and amplifies the horizontal velocity and adds a
// vertical kick proportional to how far from the paddle center the
// ball struck. The amplification can push the speed past the cap, so
// the magnitude is clamped back while keeping the new direction.
func deflect(b Ball, p Paddle, r rules) Ball {
	b.Vel.X = -b.Vel.X * r.hitSpeedup
	offset := (b.Pos.Y - p.Y) / (r.padHalfH * p.Scale)
	b.Vel.Y += offset * r.spinKick
	if b.Vel.Len() > r.maxSpeed {
		b.Vel = core.FromPolar(r.maxSpeed, b.Vel.Angle())
	}
	return b
}
