package sim

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func rulesForLevel(level config.AILevel) rules {
	return buildRules(config.Default(), ModeVsAI, level, 60)
}

func TestAIHoldsPositionWhenBallMovesAway(t *testing.T) {
	r := testRules()
	paddle := Paddle{Y: 37, Scale: 1.0}
	ball := Ball{Pos: core.Vec2{X: 0, Y: -100}, Vel: core.Vec2{X: -3, Y: 3}}

	if got := aiTargetY(ball, paddle, r); got != 37 {
		t.Errorf("AI should hold position for an outbound ball, got target %v", got)
	}
}

func TestAIGuardsZeroHorizontalVelocity(t *testing.T) {
	r := testRules()
	paddle := Paddle{Y: -12, Scale: 1.0}
	ball := Ball{Pos: core.Vec2{X: 0, Y: 0}, Vel: core.Vec2{X: 0, Y: 5}}

	// Must not divide by zero; holds position instead.
	if got := aiTargetY(ball, paddle, r); got != -12 {
		t.Errorf("AI should hold position for a vertically moving ball, got target %v", got)
	}
}

func TestAIPredictionOvershootScalesWithDifficulty(t *testing.T) {
	cfg := config.Default()
	ball := Ball{Pos: core.Vec2{X: 0, Y: 0}, Vel: core.Vec2{X: 4, Y: 2}}
	paddle := Paddle{Y: 0, Scale: 1.0}

	easy := aiTargetY(ball, paddle, rulesForLevel(cfg.AI.Easy))
	hard := aiTargetY(ball, paddle, rulesForLevel(cfg.AI.Hard))

	// timeToReach = (200-50-0)/4 = 37.5 ticks; straight line lands at 75.
	straight := ball.Pos.Y + ball.Vel.Y*37.5
	if easy <= straight {
		t.Errorf("easy AI should overshoot the straight-line prediction %v, got %v", straight, easy)
	}
	if hard <= easy {
		t.Errorf("hard AI should overshoot more than easy: easy=%v hard=%v", easy, hard)
	}
}

func TestAITargetClampedToTravelRange(t *testing.T) {
	cfg := config.Default()
	r := rulesForLevel(cfg.AI.Hard)
	ball := Ball{Pos: core.Vec2{X: 0, Y: 0}, Vel: core.Vec2{X: 4, Y: 8}}
	paddle := Paddle{Y: 0, Scale: 1.0}

	limit := r.halfH - r.padHalfH*paddle.Scale
	got := aiTargetY(ball, paddle, r)
	if got > limit || got < -limit {
		t.Errorf("AI target %v outside legal travel range ±%v", got, limit)
	}
	if got != limit {
		t.Errorf("steep trajectory should clamp to the limit %v, got %v", limit, got)
	}
}

func TestAIClampAccountsForBuffedScale(t *testing.T) {
	cfg := config.Default()
	r := rulesForLevel(cfg.AI.Hard)
	ball := Ball{Pos: core.Vec2{X: 0, Y: 0}, Vel: core.Vec2{X: 4, Y: 8}}
	paddle := Paddle{Y: 0, Scale: 1.5}

	limit := r.halfH - r.padHalfH*1.5
	if got := aiTargetY(ball, paddle, r); got != limit {
		t.Errorf("buffed paddle travel range should shrink to ±%v, got target %v", limit, got)
	}
}

func TestMoveTowardSnapsWithinOneStep(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		speed   float64
		want    float64
	}{
		{"snap up", 0, 3, 4, 3},
		{"snap down", 0, -2, 4, -2},
		{"step up", 0, 10, 4, 4},
		{"step down", 0, -10, 4, -4},
		{"already there", 5, 5, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moveToward(tt.current, tt.target, tt.speed); got != tt.want {
				t.Errorf("moveToward(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.speed, got, tt.want)
			}
		})
	}
}

func TestAIMovesAtDifficultySpeed(t *testing.T) {
	cfg := config.Default()
	for _, tt := range []struct {
		level config.AILevel
		want  float64
	}{
		{cfg.AI.Easy, 2},
		{cfg.AI.Medium, 4},
		{cfg.AI.Hard, 6},
	} {
		r := rulesForLevel(tt.level)
		s := newState(r)
		s.Ball.Pos = core.Vec2{X: 0, Y: 0}
		s.Ball.Vel = core.Vec2{X: 4, Y: 8}

		s = stepAI(s, r)
		if s.Right.Y != tt.want {
			t.Errorf("AI with speed %v should move %v per tick, moved to %v", tt.want, tt.want, s.Right.Y)
		}
	}
}
