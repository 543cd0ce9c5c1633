// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"math"

	"github.com/ik5/airmix/audio"
)

const (
	// MasterRate is the fixed sample rate of the rendered master.
	MasterRate = 44100
	// MasterChannels is the fixed channel count of the rendered master.
	MasterChannels = 2

	// tailFade is the fade applied to the final event.
	tailFade = 1.0
	// minFade is the ramp applied to otherwise hard-cut events when
	// Options.MinFade is on.
	minFade = 0.010
	// silentFallback is the master length for an empty playlist.
	silentFallback = 1.0
)

// Options control rendering. The zero value renders at 44100 Hz stereo with
// hard cuts preserved.
type Options struct {
	// SampleRate of the master; MasterRate when 0.
	SampleRate int
	// MinFade applies a 10 ms fade-out to middle events that have no
	// computed overlap instead of cutting hard. Off by default: the hard
	// cut matches long-standing playout behavior, even though it can be
	// audible.
	MinFade bool
}

// Render composites all placement events into a single stereo master
// buffer. Overlapping regions sum both clips; each event carries a gain
// envelope that holds 1 from its start and ramps linearly to 0 across its
// crossfade (or across the final second for the last event).
//
// An empty event list yields one second of silence rather than an error,
// so an empty playlist still produces a playable master.
func Render(segs []Segment, events []Event, opts Options) *audio.Buffer {
	rate := opts.SampleRate
	if rate <= 0 {
		rate = MasterRate
	}

	if len(events) == 0 {
		return audio.NewBuffer(MasterChannels, rate, rate)
	}

	totalFrames := int(math.Ceil(Length(events) * float64(rate)))
	master := audio.NewBuffer(MasterChannels, totalFrames, rate)

	for i := range events {
		ev := events[i]
		src := segs[i].Buffer
		if src == nil || src.Frames() == 0 {
			continue
		}

		destStart := frameIndex(ev.DestStart, rate)
		destEnd := frameIndex(ev.DestEnd, rate)
		srcStart := frameIndex(ev.SourceStart, src.Rate)
		n := destEnd - destStart

		// Where the fade-out begins, relative to the event start. n means
		// no fade at all.
		fadeFrom := n
		switch {
		case i+1 < len(events) && ev.Overlap(events[i+1]) > 0:
			fadeFrom = frameIndex(events[i+1].DestStart, rate) - destStart
		case i+1 == len(events):
			fadeFrom = n - int(tailFade*float64(rate))
		case opts.MinFade:
			fadeFrom = n - int(minFade*float64(rate))
		}
		if fadeFrom < 0 {
			fadeFrom = 0
		}

		mix(master, src, destStart, srcStart, n, fadeFrom)
	}

	return master
}

// mix adds n frames of src (starting at srcStart) into master (starting at
// destStart), ramping the gain linearly from 1 at fadeFrom down to exactly
// 0 on the event's last frame. Mono sources feed both master channels; for
// wider sources only the first two channels are used.
func mix(master, src *audio.Buffer, destStart, srcStart, n, fadeFrom int) {
	srcFrames := src.Frames()
	masterFrames := master.Frames()
	fadeLen := n - 1 - fadeFrom

	for k := 0; k < n; k++ {
		si := srcStart + k
		di := destStart + k
		if si >= srcFrames || di >= masterFrames {
			break
		}
		if si < 0 || di < 0 {
			continue
		}

		gain := float32(1)
		if k >= fadeFrom {
			if fadeLen <= 0 {
				gain = 0
			} else {
				gain = float32(n-1-k) / float32(fadeLen)
			}
		}

		for c := 0; c < master.Channels(); c++ {
			sc := c
			if sc >= src.Channels() {
				sc = src.Channels() - 1
			}
			master.Data[c][di] += src.Data[sc][si] * gain
		}
	}
}

// frameIndex converts a time in seconds to the nearest frame index at rate.
func frameIndex(t float64, rate int) int {
	return int(math.Round(t * float64(rate)))
}
