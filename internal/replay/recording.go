// Package replay records and replays matches. The simulation is fully
// deterministic given a seed, a tick rate and the per-tick input
// trace, so a replay is just that trace plus its metadata. No
// snapshots are stored.
//
// The game configuration is not part of the format. Playback
// re-simulates under whatever configuration the player loads, so a
// match recorded with a custom config replays correctly only under
// that same config.
package replay

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Wire format markers. The format is versioned so old replays fail
// loudly instead of replaying garbage.
const (
	magic   uint32 = 0x504f4e47 // "PONG"
	version uint16 = 1
)

// Frame flag bits.
const (
	flagLeftSet uint8 = 1 << iota
	flagRightSet
	flagPause
	flagRestart
)

// Frame is one tick of recorded input. Position values are only
// meaningful when the corresponding flag bit is set.
type Frame struct {
	Flags  uint8
	LeftY  float32
	RightY float32
}

// Recording is a complete match input trace.
type Recording struct {
	Mode       string
	Difficulty string
	Seed       int64
	TickRate   int
	Frames     []Frame
}

// Append records one tick of input.
func (r *Recording) Append(in core.InputFrame) {
	var f Frame
	if y, ok := in.PaddleY(core.SideLeft); ok {
		f.Flags |= flagLeftSet
		f.LeftY = float32(y)
	}
	if y, ok := in.PaddleY(core.SideRight); ok {
		f.Flags |= flagRightSet
		f.RightY = float32(y)
	}
	if in.Has(core.ActionPause) {
		f.Flags |= flagPause
	}
	if in.Has(core.ActionRestart) {
		f.Flags |= flagRestart
	}
	r.Frames = append(r.Frames, f)
}

// Input reconstructs the input frame for a recorded tick.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	if f.Flags&flagLeftSet != 0 {
		in.SetPaddleY(core.SideLeft, float64(f.LeftY))
	}
	if f.Flags&flagRightSet != 0 {
		in.SetPaddleY(core.SideRight, float64(f.RightY))
	}
	if f.Flags&flagPause != 0 {
		in.Set(core.ActionPause)
	}
	if f.Flags&flagRestart != 0 {
		in.Set(core.ActionRestart)
	}
	return in
}

// Marshal encodes the recording into its binary wire format.
func (r *Recording) Marshal() ([]byte, error) {
	if len(r.Mode) > 255 || len(r.Difficulty) > 255 {
		return nil, errors.New("replay: metadata string too long")
	}

	var buf bytes.Buffer
	w := func(v any) {
		//nolint:errcheck // bytes.Buffer writes cannot fail
		binary.Write(&buf, binary.BigEndian, v)
	}

	w(magic)
	w(version)
	w(uint16(r.TickRate)) //#nosec G115 -- tick rates are small
	w(r.Seed)
	w(uint8(len(r.Mode)))
	buf.WriteString(r.Mode)
	w(uint8(len(r.Difficulty)))
	buf.WriteString(r.Difficulty)
	w(uint32(len(r.Frames))) //#nosec G115 -- frame counts fit in 32 bits
	for _, f := range r.Frames {
		w(f.Flags)
		w(f.LeftY)
		w(f.RightY)
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a recording from its binary wire format.
func Unmarshal(data []byte) (*Recording, error) {
	buf := bytes.NewReader(data)

	var m uint32
	if err := binary.Read(buf, binary.BigEndian, &m); err != nil {
		return nil, fmt.Errorf("replay: truncated header: %w", err)
	}
	if m != magic {
		return nil, fmt.Errorf("replay: bad magic %#x", m)
	}

	var v uint16
	if err := binary.Read(buf, binary.BigEndian, &v); err != nil {
		return nil, fmt.Errorf("replay: truncated header: %w", err)
	}
	if v != version {
		return nil, fmt.Errorf("replay: unsupported version %d", v)
	}

	var rec Recording
	var tickRate uint16
	if err := binary.Read(buf, binary.BigEndian, &tickRate); err != nil {
		return nil, fmt.Errorf("replay: truncated header: %w", err)
	}
	rec.TickRate = int(tickRate)
	if err := binary.Read(buf, binary.BigEndian, &rec.Seed); err != nil {
		return nil, fmt.Errorf("replay: truncated header: %w", err)
	}

	readString := func() (string, error) {
		var n uint8
		if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
			return "", err
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(buf, b); err != nil {
			return "", err
		}
		return string(b), nil
	}

	var err error
	if rec.Mode, err = readString(); err != nil {
		return nil, fmt.Errorf("replay: truncated metadata: %w", err)
	}
	if rec.Difficulty, err = readString(); err != nil {
		return nil, fmt.Errorf("replay: truncated metadata: %w", err)
	}

	var count uint32
	if err := binary.Read(buf, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("replay: truncated frame count: %w", err)
	}
	// The count comes from untrusted bytes; cap the pre-allocation and
	// let append grow the slice if a long recording really has more.
	rec.Frames = make([]Frame, 0, min(count, 1<<16))
	for i := uint32(0); i < count; i++ {
		var f Frame
		if err := binary.Read(buf, binary.BigEndian, &f.Flags); err != nil {
			return nil, fmt.Errorf("replay: truncated frame %d: %w", i, err)
		}
		if err := binary.Read(buf, binary.BigEndian, &f.LeftY); err != nil {
			return nil, fmt.Errorf("replay: truncated frame %d: %w", i, err)
		}
		if err := binary.Read(buf, binary.BigEndian, &f.RightY); err != nil {
			return nil, fmt.Errorf("replay: truncated frame %d: %w", i, err)
		}
		rec.Frames = append(rec.Frames, f)
	}

	return &rec, nil
}
