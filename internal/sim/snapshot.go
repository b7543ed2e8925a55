package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is the read-only view of a tick handed to the presentation
// layer and the replay recorder. Primitive fields only, in the same
// spirit as the per-game snapshot types used for serialization.
type Snapshot struct {
	Tick int

	BallX, BallY   float64
	BallVX, BallVY float64

	LeftY, RightY         float64
	LeftScale, RightScale float64

	PowerUpPresent     bool
	PowerUpX, PowerUpY float64

	LeftScore  int
	RightScore int

	GameOver bool
	Paused   bool

	LastHitter core.Side
	LastScorer core.Side
	Winner     core.Side
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	return Snapshot{
		Tick:           s.Tick,
		BallX:          s.Ball.Pos.X,
		BallY:          s.Ball.Pos.Y,
		BallVX:         s.Ball.Vel.X,
		BallVY:         s.Ball.Vel.Y,
		LeftY:          s.Left.Y,
		RightY:         s.Right.Y,
		LeftScale:      s.Left.Scale,
		RightScale:     s.Right.Scale,
		PowerUpPresent: s.PowerUp.Present,
		PowerUpX:       s.PowerUp.Pos.X,
		PowerUpY:       s.PowerUp.Pos.Y,
		LeftScore:      s.LeftScore,
		RightScore:     s.RightScore,
		GameOver:       s.Phase == PhaseGameOver,
		Paused:         e.paused,
		LastHitter:     s.LastHitter,
		LastScorer:     s.LastScorer,
		Winner:         s.Winner,
	}
}
