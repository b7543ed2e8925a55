package replay

import "github.com/vovakirdan/tui-pong/internal/core"

// Player walks a recording frame by frame, handing back the input to
// feed into the engine for each tick.
type Player struct {
	rec *Recording
	pos int
}

// NewPlayer creates a playback cursor positioned at the first frame.
func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Next returns the input for the next tick. It reports false once the
// recording is exhausted.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.rec.Frames) {
		return core.InputFrame{}, false
	}
	in := p.rec.Frames[p.pos].Input()
	p.pos++
	return in, true
}

// Pos returns the index of the next frame to be played.
func (p *Player) Pos() int { return p.pos }

// Len returns the total number of frames in the recording.
func (p *Player) Len() int { return len(p.rec.Frames) }

// Done reports whether playback has reached the end.
func (p *Player) Done() bool { return p.pos >= len(p.rec.Frames) }

// Rewind resets the cursor to the first frame.
func (p *Player) Rewind() { p.pos = 0 }
