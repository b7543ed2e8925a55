package replay

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func sampleRecording() *Recording {
	rec := &Recording{
		Mode:       "vs-ai",
		Difficulty: "hard",
		Seed:       -7771234567,
		TickRate:   60,
	}

	empty := core.NewInputFrame()
	rec.Append(empty)

	move := core.NewInputFrame()
	move.SetPaddleY(core.SideLeft, -123.5)
	rec.Append(move)

	both := core.NewInputFrame()
	both.SetPaddleY(core.SideLeft, 42)
	both.SetPaddleY(core.SideRight, -300.25)
	both.Set(core.ActionPause)
	rec.Append(both)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	rec.Append(restart)

	return rec
}

func TestRecordingRoundTrip(t *testing.T) {
	rec := sampleRecording()

	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Mode != rec.Mode || got.Difficulty != rec.Difficulty {
		t.Errorf("metadata mismatch: got %q/%q, want %q/%q", got.Mode, got.Difficulty, rec.Mode, rec.Difficulty)
	}
	if got.Seed != rec.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, rec.Seed)
	}
	if got.TickRate != rec.TickRate {
		t.Errorf("tickRate = %d, want %d", got.TickRate, rec.TickRate)
	}
	if len(got.Frames) != len(rec.Frames) {
		t.Fatalf("frame count = %d, want %d", len(got.Frames), len(rec.Frames))
	}
	for i := range rec.Frames {
		if got.Frames[i] != rec.Frames[i] {
			t.Errorf("frame %d = %+v, want %+v", i, got.Frames[i], rec.Frames[i])
		}
	}
}

func TestFrameInputReconstruction(t *testing.T) {
	in := core.NewInputFrame()
	in.SetPaddleY(core.SideLeft, -123.5)
	in.Set(core.ActionPause)

	var rec Recording
	rec.Append(in)

	back := rec.Frames[0].Input()
	if y, ok := back.PaddleY(core.SideLeft); !ok || y != -123.5 {
		t.Errorf("left paddle command = (%v, %v), want (-123.5, true)", y, ok)
	}
	if _, ok := back.PaddleY(core.SideRight); ok {
		t.Error("right paddle command should not be set")
	}
	if !back.Has(core.ActionPause) {
		t.Error("pause action should survive the round trip")
	}
	if back.Has(core.ActionRestart) {
		t.Error("restart action should not be set")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	cases := map[string][]byte{
		"empty":     nil,
		"bad magic": {0xde, 0xad, 0xbe, 0xef, 0, 1},
		"truncated": {0x50, 0x4f, 0x4e, 0x47, 0, 1},
	}
	for name, data := range cases {
		if _, err := Unmarshal(data); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	rec := sampleRecording()
	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	data[5] = 99 // bump the version field

	if _, err := Unmarshal(data); err == nil {
		t.Error("expected an unsupported-version error")
	}
}

func TestUnmarshalRejectsOverstatedFrameCount(t *testing.T) {
	rec := sampleRecording()
	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Overwrite the frame count with the maximum value. Decoding must
	// fail on the first missing frame instead of trusting the count.
	const frameSize = 9
	off := len(data) - len(rec.Frames)*frameSize - 4
	data[off], data[off+1], data[off+2], data[off+3] = 0xff, 0xff, 0xff, 0xff

	if _, err := Unmarshal(data); err == nil {
		t.Error("expected a truncated-frame error")
	}
}

func TestPlayerWalksFramesInOrder(t *testing.T) {
	rec := sampleRecording()
	p := NewPlayer(rec)

	if p.Len() != 4 {
		t.Fatalf("len = %d, want 4", p.Len())
	}

	var count int
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		if count == 3 && !in.Has(core.ActionRestart) {
			t.Error("last frame should carry the restart action")
		}
		count++
	}
	if count != 4 {
		t.Errorf("played %d frames, want 4", count)
	}
	if !p.Done() {
		t.Error("player should be done after the last frame")
	}

	p.Rewind()
	if p.Done() || p.Pos() != 0 {
		t.Error("rewind should return to the first frame")
	}
}
