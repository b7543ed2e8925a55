package sim

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// scriptedRand feeds predetermined draws to the spawn gate.
type scriptedRand struct {
	draws []int
	i     int
}

func (r *scriptedRand) Intn(n int) int {
	if r.i >= len(r.draws) {
		return n - 1 // fail the gate once the script runs out
	}
	v := r.draws[r.i]
	r.i++
	return v % n
}

func TestNoSpawnBeforeMinBallAge(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Ball.AgeTicks = r.minAgeTicks - 1

	s, events := maybeSpawnPowerUp(s, r, &scriptedRand{draws: []int{0, 0}})

	if s.PowerUp.Present {
		t.Error("no power-up should spawn before the ball has survived long enough")
	}
	if len(events) != 0 {
		t.Errorf("unexpected events: %v", events)
	}
}

func TestSpawnAtCourtCenter(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Ball.AgeTicks = r.minAgeTicks

	s, events := maybeSpawnPowerUp(s, r, &scriptedRand{draws: []int{0, 0}})

	if !s.PowerUp.Present {
		t.Fatal("power-up should spawn when both gate draws hit")
	}
	if s.PowerUp.Pos != (core.Vec2{}) {
		t.Errorf("power-up should spawn at the court center, got %v", s.PowerUp.Pos)
	}
	if len(events) != 1 || events[0].Type != EventPowerUpSpawned {
		t.Errorf("expected a spawn event, got %v", events)
	}
}

func TestSpawnGateRequiresBothDraws(t *testing.T) {
	r := testRules()

	for _, draws := range [][]int{{1, 0}, {0, 1}, {1, 1}} {
		s := newState(r)
		s.Ball.AgeTicks = r.minAgeTicks

		s, _ = maybeSpawnPowerUp(s, r, &scriptedRand{draws: draws})
		if s.PowerUp.Present {
			t.Errorf("gate draws %v should not spawn a power-up", draws)
		}
	}
}

func TestSecondSpawnAttemptIsNoOp(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Ball.AgeTicks = r.minAgeTicks
	s.PowerUp = PowerUp{Pos: core.Vec2{X: 1}, Present: true}

	rng := &scriptedRand{draws: []int{0, 0}}
	s, events := maybeSpawnPowerUp(s, r, rng)

	if s.PowerUp.Pos != (core.Vec2{X: 1}) {
		t.Error("existing power-up should be untouched by a spawn attempt")
	}
	if len(events) != 0 {
		t.Errorf("unexpected events: %v", events)
	}
	if rng.i != 0 {
		t.Error("spawn attempt while a power-up exists should not consume randomness")
	}
}

func TestPickupBuffsLastHitter(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Tick = 100
	s.LastHitter = core.SideRight

	s = applyPickup(s, r)

	if s.Right.Scale != r.buffScale {
		t.Errorf("right paddle scale should be %v, got %v", r.buffScale, s.Right.Scale)
	}
	if s.Right.BuffUntil != 100+r.buffTicks {
		t.Errorf("buff deadline should be %d, got %d", 100+r.buffTicks, s.Right.BuffUntil)
	}
	if s.Left.Scale != 1.0 {
		t.Error("left paddle should be unaffected")
	}
}

func TestPickupWithoutHitterIsNoOp(t *testing.T) {
	r := testRules()
	s := newState(r)

	s = applyPickup(s, r)

	if s.Left.Scale != 1.0 || s.Right.Scale != 1.0 {
		t.Error("pickup before any paddle hit should buff nobody")
	}
}

func TestRepickupRefreshesWithoutStacking(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Tick = 100
	s.LastHitter = core.SideLeft
	s = applyPickup(s, r)

	s.Tick = 200
	s = applyPickup(s, r)

	if s.Left.Scale != r.buffScale {
		t.Errorf("scale should stay at %v, not stack, got %v", r.buffScale, s.Left.Scale)
	}
	if s.Left.BuffUntil != 200+r.buffTicks {
		t.Errorf("re-pickup should refresh the deadline to %d, got %d", 200+r.buffTicks, s.Left.BuffUntil)
	}
}

func TestBuffExpiresExactlyAtDeadline(t *testing.T) {
	r := testRules()
	s := newState(r)
	s.Tick = 100
	s.LastHitter = core.SideLeft
	s = applyPickup(s, r)
	deadline := s.Left.BuffUntil

	s.Tick = deadline - 1
	s, events := expireBuffs(s)
	if s.Left.Scale != r.buffScale || len(events) != 0 {
		t.Error("buff should still be active one tick before the deadline")
	}

	s.Tick = deadline
	s, events = expireBuffs(s)
	if s.Left.Scale != 1.0 {
		t.Errorf("scale should revert to 1.0 at the deadline, got %v", s.Left.Scale)
	}
	if s.Left.BuffUntil != 0 {
		t.Error("deadline should clear on expiry")
	}
	if len(events) != 1 || events[0].Type != EventBuffExpired || events[0].Side != core.SideLeft {
		t.Errorf("expected a left buff-expired event, got %v", events)
	}
}
