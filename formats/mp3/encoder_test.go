package mp3

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/airmix/audio"
)

// recordingEncoder captures every block handed to it and emits predictable
// chunks so write ordering can be verified.
type recordingEncoder struct {
	blocks   [][2][]int16
	flushed  bool
	blockErr error
	flushErr error
}

func (e *recordingEncoder) EncodeBlock(left, right []int16) ([]byte, error) {
	if e.blockErr != nil {
		return nil, e.blockErr
	}

	l := make([]int16, len(left))
	copy(l, left)
	r := make([]int16, len(right))
	copy(r, right)
	e.blocks = append(e.blocks, [2][]int16{l, r})

	return []byte{byte('A' + len(e.blocks) - 1)}, nil
}

func (e *recordingEncoder) Flush() ([]byte, error) {
	if e.flushErr != nil {
		return nil, e.flushErr
	}
	e.flushed = true
	return []byte{'Z'}, nil
}

func TestEncode_BlockSizes(t *testing.T) {
	t.Parallel()

	// 2500 frames: two full blocks plus a 196-frame remainder.
	buf := audio.NewBuffer(1, 2500, 44100)

	enc := &recordingEncoder{}
	var out bytes.Buffer
	if err := Encode(&out, buf, enc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	wantSizes := []int{BlockFrames, BlockFrames, 196}
	if len(enc.blocks) != len(wantSizes) {
		t.Fatalf("got %d blocks, want %d", len(enc.blocks), len(wantSizes))
	}
	for i, want := range wantSizes {
		if len(enc.blocks[i][0]) != want || len(enc.blocks[i][1]) != want {
			t.Errorf("block %d sizes = %d/%d, want %d",
				i, len(enc.blocks[i][0]), len(enc.blocks[i][1]), want)
		}
	}

	if !enc.flushed {
		t.Error("Flush() was never called")
	}
	if got := out.String(); got != "ABCZ" {
		t.Errorf("output = %q, want chunks in block order then flush (ABCZ)", got)
	}
}

func TestEncode_MonoDuplicatesChannel(t *testing.T) {
	t.Parallel()

	buf := &audio.Buffer{
		Data: [][]float32{{0.5, -0.5, 0.25}},
		Rate: 44100,
	}

	enc := &recordingEncoder{}
	if err := Encode(&bytes.Buffer{}, buf, enc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if len(enc.blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(enc.blocks))
	}

	left, right := enc.blocks[0][0], enc.blocks[0][1]
	want := []int16{16383, -16384, 8191}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("left[%d] = %d, want %d", i, left[i], want[i])
		}
		if right[i] != left[i] {
			t.Errorf("right[%d] = %d, want copy of left (%d)", i, right[i], left[i])
		}
	}
}

func TestEncode_StereoChannelsSeparate(t *testing.T) {
	t.Parallel()

	buf := &audio.Buffer{
		Data: [][]float32{
			{0.5, 0.5},
			{-0.5, -0.5},
		},
		Rate: 44100,
	}

	enc := &recordingEncoder{}
	if err := Encode(&bytes.Buffer{}, buf, enc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	left, right := enc.blocks[0][0], enc.blocks[0][1]
	if left[0] != 16383 {
		t.Errorf("left[0] = %d, want 16383", left[0])
	}
	if right[0] != -16384 {
		t.Errorf("right[0] = %d, want -16384", right[0])
	}
}

func TestEncode_NoChannels(t *testing.T) {
	t.Parallel()

	err := Encode(&bytes.Buffer{}, &audio.Buffer{Rate: 44100}, &recordingEncoder{})
	if err != ErrNoChannels {
		t.Errorf("Encode() error = %v, want ErrNoChannels", err)
	}
}

func TestEncode_EmptyBufferStillFlushes(t *testing.T) {
	t.Parallel()

	buf := audio.NewBuffer(2, 0, 44100)

	enc := &recordingEncoder{}
	var out bytes.Buffer
	if err := Encode(&out, buf, enc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if len(enc.blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(enc.blocks))
	}
	if !enc.flushed {
		t.Error("Flush() was never called for an empty buffer")
	}
}

func TestEncode_BlockError(t *testing.T) {
	t.Parallel()

	boom := errors.New("codec failed")
	enc := &recordingEncoder{blockErr: boom}

	err := Encode(&bytes.Buffer{}, audio.NewBuffer(1, 10, 44100), enc)
	if !errors.Is(err, boom) {
		t.Errorf("Encode() error = %v, want wrapped %v", err, boom)
	}
}

func TestEncode_FlushError(t *testing.T) {
	t.Parallel()

	boom := errors.New("flush failed")
	enc := &recordingEncoder{flushErr: boom}

	err := Encode(&bytes.Buffer{}, audio.NewBuffer(1, 10, 44100), enc)
	if !errors.Is(err, boom) {
		t.Errorf("Encode() error = %v, want wrapped %v", err, boom)
	}
}
