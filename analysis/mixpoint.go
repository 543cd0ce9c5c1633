// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"github.com/ik5/airmix/playlist"
)

// Heuristic constants, in seconds.
const (
	// voiceTail is how much of a voice clip stays clear before the next
	// clip blends in.
	voiceTail = 0.5
	// slopeSplit separates sharp endings from long fade-outs: the distance
	// between the -15 dB and -6 dB decay points.
	slopeSplit = 1.5
	// sharpOverlap caps the overlap for clips that end abruptly.
	sharpOverlap = 1.5
	// fadeOverlap caps the overlap for clips with a long natural fade.
	fadeOverlap = 6.0
	// voiceHeadroom pulls the transition earlier when the next clip is
	// spoken content.
	voiceHeadroom = 1.5
)

// EffectiveMixPoint picks the moment inside a clip where the next clip
// starts blending in. It is a pure function of the clip's cue points, its
// category, and the successor's category (hasNext=false for the final
// clip), so the heuristics stay testable in isolation from rendering.
//
// The decision ladder:
//   - Voice clips mix half a second before their cue-out.
//   - A small spread between the -15 dB and -6 dB decay points means the
//     clip ends sharply; overlap is capped at 1.5 s of tail.
//   - A large spread means a long fade-out; overlap is capped at 6 s.
//   - Otherwise the -15 dB decay point is used directly.
//   - A voice successor pulls the result 1.5 s earlier (never before
//     cue-in) to leave headroom before spoken content.
func EffectiveMixPoint(c CuePoints, cat playlist.Category, next playlist.Category, hasNext bool) float64 {
	mix := c.MixPoint15

	fadeSlope := math.Abs(c.MixPoint15 - c.MixPoint6)
	tail := c.CueOut - c.MixPoint15

	switch {
	case cat == playlist.Voice:
		mix = c.CueOut - voiceTail
	case fadeSlope < slopeSplit:
		if tail > sharpOverlap {
			mix = c.CueOut - sharpOverlap
		}
	default:
		if tail > fadeOverlap {
			mix = c.CueOut - fadeOverlap
		}
	}

	if hasNext && next == playlist.Voice {
		mix = math.Max(c.CueIn, mix-voiceHeadroom)
	}

	return mix
}
