// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	"github.com/ik5/airmix/audio"
	"github.com/ik5/airmix/utils"
)

// BlockFrames is how many frames per channel are handed to the external
// encoder at a time. 1152 is one MPEG audio granule pair, the natural unit
// of the codec.
const BlockFrames = 1152

// BlockEncoder is the external MPEG encoder collaborator. EncodeBlock
// consumes up to BlockFrames samples per channel and returns whatever
// encoded bytes became available (possibly none, since the codec buffers
// internally). Flush drains the remainder. After Flush the encoder is
// spent.
type BlockEncoder interface {
	EncodeBlock(left, right []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// Encode feeds buf through enc in BlockFrames-sized blocks and writes every
// returned chunk to w in order, ending with the flushed remainder. Float
// samples are quantized exactly like the WAV path (clamp, negative x32768 /
// non-negative x32767, truncate). Mono buffers reuse their single channel
// for both encoder inputs.
func Encode(w io.Writer, buf *audio.Buffer, enc BlockEncoder) error {
	if buf.Channels() == 0 {
		return ErrNoChannels
	}

	left := buf.Data[0]
	right := left
	if buf.Channels() > 1 {
		right = buf.Data[1]
	}

	frames := buf.Frames()
	lblock := make([]int16, BlockFrames)
	rblock := make([]int16, BlockFrames)

	for off := 0; off < frames; off += BlockFrames {
		n := BlockFrames
		if off+n > frames {
			n = frames - off
		}

		for i := 0; i < n; i++ {
			lblock[i] = utils.SampleToPCM16(left[off+i])
			rblock[i] = utils.SampleToPCM16(right[off+i])
		}

		chunk, err := enc.EncodeBlock(lblock[:n], rblock[:n])
		if err != nil {
			return fmt.Errorf("encode block at frame %d: %w", off, err)
		}
		if len(chunk) > 0 {
			if _, err := w.Write(chunk); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
	}

	chunk, err := enc.Flush()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if len(chunk) > 0 {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
