// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"github.com/ik5/airmix/audio"
)

// Detection thresholds in dBFS. -25/-28 bound the audible program material
// (silence trimming); -15/-6 bracket the onset of the trailing decay and
// feed the mix-point heuristics.
const (
	cueInThresholdDB  = -25.0
	cueOutThresholdDB = -28.0

	mixSoftThresholdDB = -15.0
	mixLoudThresholdDB = -6.0

	// silenceFloorDB stands in for the level of a zero sample, which has
	// no logarithm.
	silenceFloorDB = -100.0
)

// CuePoints are the four per-clip times the timeline builder works from,
// all in seconds from the start of the decoded clip.
//
// Invariant: 0 <= CueIn <= CueOut <= clip duration. MixPoint15 and
// MixPoint6 both lie in [0, CueOut] but have no fixed ordering relative to
// each other.
type CuePoints struct {
	// CueIn is the start trim point: the first moment louder than -25 dB.
	CueIn float64
	// CueOut is the end trim point: the last moment louder than -28 dB.
	// When no sample qualifies it falls open to the full clip duration,
	// so a quiet clip is never trimmed away.
	CueOut float64
	// MixPoint15 is the last moment before CueOut louder than -15 dB.
	MixPoint15 float64
	// MixPoint6 is the last moment before CueOut louder than -6 dB.
	MixPoint6 float64
}

// level returns the sample amplitude in dBFS.
func level(x float32) float64 {
	if x == 0 {
		return silenceFloorDB
	}
	return 20 * math.Log10(math.Abs(float64(x)))
}

// DetectCues scans a decoded (and normally peak-normalized) buffer for its
// cue and mix points. Only the first channel is inspected; it serves as the
// mono reference for the whole clip.
func DetectCues(b *audio.Buffer) CuePoints {
	var cp CuePoints

	if b == nil || b.Channels() == 0 || b.Frames() == 0 {
		return cp
	}

	ch := b.Data[0]
	rate := float64(b.Rate)

	// Forward scan for the first audible sample.
	cp.CueIn = 0
	for i, s := range ch {
		if level(s) > cueInThresholdDB {
			cp.CueIn = float64(i) / rate
			break
		}
	}

	// Backward scan for the last audible sample. Fail open to the full
	// duration when nothing qualifies.
	cp.CueOut = b.Duration()
	for i := len(ch) - 1; i >= 0; i-- {
		if level(ch[i]) > cueOutThresholdDB {
			cp.CueOut = float64(i) / rate
			break
		}
	}

	if cp.CueIn > cp.CueOut {
		cp.CueIn = cp.CueOut
	}

	cp.MixPoint15 = mixPoint(ch, rate, cp.CueOut, mixSoftThresholdDB)
	cp.MixPoint6 = mixPoint(ch, rate, cp.CueOut, mixLoudThresholdDB)

	return cp
}

// mixPoint scans backward from cueOut for the last moment louder than
// thresholdDB. When the whole range stays below the threshold it falls back
// to two seconds before cueOut, clamped at zero.
func mixPoint(ch []float32, rate, cueOut, thresholdDB float64) float64 {
	start := int(cueOut * rate)
	if start > len(ch)-1 {
		start = len(ch) - 1
	}

	for i := start; i >= 0; i-- {
		if level(ch[i]) > thresholdDB {
			return float64(i) / rate
		}
	}

	fallback := cueOut - 2
	if fallback < 0 {
		fallback = 0
	}
	return fallback
}
