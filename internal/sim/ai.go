package sim

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// aiTargetY computes where the AI paddle wants to be. The AI only
// predicts while the ball travels toward it; otherwise it holds its
// position rather than retreating to center.
//
// The intercept deliberately overshoots the straight-line prediction
// by the difficulty's prediction factor: harder settings read the
// trajectory further ahead, not more accurately, which produces the
// characteristic overcorrection at hard difficulty.
func aiTargetY(ball Ball, paddle Paddle, r rules) float64 {
	// Holds position for a ball moving away. The guard also covers the
	// degenerate zero horizontal velocity, so the division below can
	// never blow up.
	if ball.Vel.X <= 0 {
		return paddle.Y
	}

	interceptX := r.halfW - r.zone
	ticksToReach := (interceptX - ball.Pos.X) / ball.Vel.X
	if ticksToReach < 0 {
		ticksToReach = 0 // already inside the collision zone
	}

	predicted := ball.Pos.Y + ball.Vel.Y*ticksToReach*(1+r.aiPrediction)

	limit := paddleLimit(paddle.Scale, r)
	return core.ClampF(predicted, -limit, limit)
}

// moveToward advances a paddle toward its target at a capped per-tick
// speed, snapping exactly onto the target when within one step to
// avoid oscillation around it.
func moveToward(current, target, speed float64) float64 {
	diff := target - current
	if math.Abs(diff) <= speed {
		return target
	}
	if diff > 0 {
		return current + speed
	}
	return current - speed
}

// stepAI moves the right paddle for this tick in vs-AI mode.
func stepAI(s State, r rules) State {
	target := aiTargetY(s.Ball, s.Right, r)
	s.Right.Y = moveToward(s.Right.Y, target, r.aiSpeed)
	return s
}
