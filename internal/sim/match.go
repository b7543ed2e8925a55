package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// applyScore credits a point to the scoring side and transitions the
// match to GameOver exactly when the winning threshold is reached.
// The ball respawn has already happened inside the physics step.
func applyScore(s State, r rules, scorer core.Side) (State, []Event) {
	switch scorer {
	case core.SideLeft:
		s.LeftScore++
	case core.SideRight:
		s.RightScore++
	default:
		return s, nil
	}
	s.LastScorer = scorer

	score := s.LeftScore
	if scorer == core.SideRight {
		score = s.RightScore
	}
	if score >= r.winScore {
		s.Phase = PhaseGameOver
		s.Winner = scorer
		return s, []Event{{Type: EventMatchOver, Side: scorer}}
	}
	return s, nil
}
