// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/airmix/audio"
	"github.com/ik5/airmix/utils"
)

// headerSize is the canonical RIFF/WAVE header length for PCM data with a
// single fmt chunk.
const headerSize = 44

// Encode writes buf as a 16-bit PCM WAVE stream: RIFF header, fmt chunk,
// data chunk, interleaved little-endian samples. The byte layout is fixed
// so the output is reproducible bit-for-bit for identical input.
//
// Float samples are clamped to [-1, 1] and truncated toward zero after
// scaling (negative by 32768, non-negative by 32767), matching the
// compressed encode path so both outputs quantize identically.
func Encode(w io.Writer, buf *audio.Buffer) error {
	numChannels := buf.Channels()
	if numChannels == 0 {
		return ErrNoChannels
	}

	frames := buf.Frames()
	sampleRate := buf.Rate

	bytesPerSample := 2
	dataSize := uint32(frames * numChannels * bytesPerSample)
	byteRate := uint32(sampleRate * numChannels * bytesPerSample)
	blockAlign := uint16(numChannels * bytesPerSample)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize) // total size - 8
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Interleave and write in chunks to keep allocations flat for long
	// masters.
	const chunkFrames = 4096
	out := make([]byte, 0, chunkFrames*numChannels*bytesPerSample)

	for f := 0; f < frames; f++ {
		for c := 0; c < numChannels; c++ {
			v := utils.SampleToPCM16(buf.Data[c][f])
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}

		if len(out) >= chunkFrames*numChannels*bytesPerSample {
			if _, err := w.Write(out); err != nil {
				return fmt.Errorf("%w", err)
			}
			out = out[:0]
		}
	}

	if len(out) > 0 {
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
