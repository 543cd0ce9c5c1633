// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"fmt"

	lame "github.com/viert/go-lame"
)

// Bitrate is the constant bitrate of the compressed master, in kbit/s.
const Bitrate = 320

// lameEncoder adapts the LAME bindings to the BlockEncoder contract. The
// bindings write encoded bytes to an io.Writer as PCM goes in; a bytes
// buffer in between turns that into the chunk-per-block shape the engine
// consumes.
type lameEncoder struct {
	enc *lame.Encoder
	out bytes.Buffer
	pcm []byte
}

// NewLameEncoder builds a 320 kbit/s CBR stereo encoder at sampleRate.
// Construction errors (unusable rate, missing codec) surface here, before
// any audio is processed.
func NewLameEncoder(sampleRate int) (BlockEncoder, error) {
	e := &lameEncoder{}

	enc := lame.NewEncoder(&e.out)
	if enc == nil {
		return nil, ErrEncoderUnavailable
	}

	if err := enc.SetNumChannels(2); err != nil {
		return nil, fmt.Errorf("lame channels: %w", err)
	}
	if err := enc.SetInSamplerate(sampleRate); err != nil {
		return nil, fmt.Errorf("lame samplerate: %w", err)
	}
	if err := enc.SetBrate(Bitrate); err != nil {
		return nil, fmt.Errorf("lame bitrate: %w", err)
	}

	e.enc = enc
	e.pcm = make([]byte, BlockFrames*2*2)
	return e, nil
}

func (e *lameEncoder) EncodeBlock(left, right []int16) ([]byte, error) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	buf := e.pcm[:n*2*2]
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(left[i]))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(right[i]))
	}

	e.out.Reset()
	if _, err := e.enc.Write(buf); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return append([]byte(nil), e.out.Bytes()...), nil
}

func (e *lameEncoder) Flush() ([]byte, error) {
	e.out.Reset()
	if err := e.enc.Close(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return append([]byte(nil), e.out.Bytes()...), nil
}
