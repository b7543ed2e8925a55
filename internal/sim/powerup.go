package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// Rand is the random source for power-up spawning. The engine seeds a
// math/rand generator from the runtime seed; tests inject a stub to
// force or suppress spawns deterministically.
type Rand interface {
	Intn(n int) int
}

// maybeSpawnPowerUp runs the spawn policy. It is evaluated on the slow
// cadence (once per second of ticks), and only when the current ball
// has survived long enough. The gate is two independent draws, a coin
// flip and a 1-in-N draw, both of which must hit. While a power-up is
// already on the court the attempt is a no-op.
func maybeSpawnPowerUp(s State, r rules, rng Rand) (State, []Event) {
	if s.PowerUp.Present {
		return s, nil
	}
	if s.Ball.AgeTicks < r.minAgeTicks {
		return s, nil
	}

	// Both draws happen regardless of the outcome of the first, so a
	// run consumes the same amount of randomness either way.
	coin := rng.Intn(2) == 0
	rare := rng.Intn(r.spawnOneIn) == 0
	if !coin || !rare {
		return s, nil
	}

	// Always the court center.
	s.PowerUp = PowerUp{Pos: core.Vec2{}, Present: true}
	return s, []Event{{Type: EventPowerUpSpawned}}
}

// applyPickup grants the last hitter's paddle its size buff. A pickup
// while a buff is already active refreshes the deadline without
// stacking the scale. A pickup before anyone has hit the ball has no
// recipient and only consumes the power-up.
func applyPickup(s State, r rules) State {
	side := s.LastHitter
	if side == core.SideNone {
		return s
	}
	p := s.paddle(side)
	p.Scale = r.buffScale
	p.BuffUntil = s.Tick + r.buffTicks
	return s
}

// expireBuffs reverts any buff whose deadline has passed. Deadlines
// are plain tick values checked here every tick, so expiry is
// deterministic and a refreshed buff simply pushes its deadline out.
func expireBuffs(s State) (State, []Event) {
	var events []Event
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		p := s.paddle(side)
		if p.BuffUntil != 0 && s.Tick >= p.BuffUntil {
			p.Scale = 1.0
			p.BuffUntil = 0
			events = append(events, Event{Type: EventBuffExpired, Side: side})
		}
	}
	return s, events
}
