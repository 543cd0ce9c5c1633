// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a fully decoded clip as per-channel float32 samples in [-1,1]
// plus the sample rate. It is the unit of work for analysis and rendering:
// each render request decodes its own buffers and discards them after
// encoding. No Buffer is shared between requests.
type Buffer struct {
	// Data holds one sample slice per channel. All channels have equal length.
	Data [][]float32
	// Rate is the sample rate in Hz.
	Rate int
}

// NewBuffer allocates a zeroed (silent) buffer.
func NewBuffer(channels, frames, rate int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Buffer{Data: data, Rate: rate}
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the per-channel sample count.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the buffer length in seconds (frames / rate).
func (b *Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.Rate)
}

// ReadAll drains src into a Buffer, deinterleaving channels. When targetRate
// differs from the source rate the stream is pulled through a Resampler
// first, so every buffer handed to the analysis and render stages shares one
// rate. targetRate <= 0 keeps the source rate.
func ReadAll(src Source, targetRate int) (*Buffer, error) {
	s := src
	if targetRate > 0 && src.SampleRate() != targetRate {
		s = NewResampler(src, targetRate)
	}

	channels := s.Channels()
	if channels <= 0 {
		channels = 1
	}

	data := make([][]float32, channels)

	// Read in chunks whose length is a multiple of the channel count.
	tmp := make([]float32, 1024*channels)

	for {
		n, err := s.ReadSamples(tmp)
		frames := n / channels
		for f := 0; f < frames; f++ {
			for c := 0; c < channels; c++ {
				data[c] = append(data[c], tmp[f*channels+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// Normalize ragged reads: a partial final chunk may leave channels uneven
	// only if the source misreported its layout. Truncate to the shortest.
	minLen := len(data[0])
	for c := 1; c < channels; c++ {
		if len(data[c]) < minLen {
			minLen = len(data[c])
		}
	}
	for c := 0; c < channels; c++ {
		data[c] = data[c][:minLen]
	}

	return &Buffer{Data: data, Rate: s.SampleRate()}, nil
}
