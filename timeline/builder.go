// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"github.com/ik5/airmix/analysis"
	"github.com/ik5/airmix/audio"
	"github.com/ik5/airmix/playlist"
)

// Segment is one resolved playlist position ready for placement: the
// decoded buffer, its cue points, and the declared category.
type Segment struct {
	Buffer   *audio.Buffer
	Cues     analysis.CuePoints
	Category playlist.Category
}

// Event places a clip's trimmed window on the master timeline. SourceStart
// and SourceEnd are times inside the clip; DestStart and DestEnd are times
// on the master. All values are seconds.
//
// Events come out in playlist order. DestStart never decreases, and a
// successor may start before the previous DestEnd - that overlap is the
// crossfade region the renderer realizes with complementary gain ramps.
type Event struct {
	SourceStart float64
	SourceEnd   float64
	DestStart   float64
	DestEnd     float64
}

// Overlap returns the crossfade length between ev and its successor, or a
// value <= 0 when the two do not overlap (hard cut).
func (ev Event) Overlap(next Event) float64 {
	return ev.DestEnd - next.DestStart
}

// Build folds an ordered list of segments into placement events. A single
// cursor walks the master timeline: each clip lands at the cursor with its
// trimmed length, then the cursor advances only up to the clip's effective
// mix point, so the remainder of the clip overlaps its successor.
func Build(segs []Segment) []Event {
	events := make([]Event, 0, len(segs))
	cursor := 0.0

	for i := range segs {
		c := segs[i].Cues

		trim := c.CueOut - c.CueIn
		if trim < 0 {
			trim = 0
		}

		events = append(events, Event{
			SourceStart: c.CueIn,
			SourceEnd:   c.CueOut,
			DestStart:   cursor,
			DestEnd:     cursor + trim,
		})

		var next playlist.Category
		hasNext := i+1 < len(segs)
		if hasNext {
			next = segs[i+1].Category
		}

		mix := analysis.EffectiveMixPoint(c, segs[i].Category, next, hasNext)

		// Never advance past the clip's own trimmed end, and never move
		// backward: the cursor stays monotonic.
		until := mix - c.CueIn
		if until > trim {
			until = trim
		}
		if until < 0 {
			until = 0
		}

		cursor += until
	}

	return events
}

// Length returns the master duration in seconds implied by events: the
// DestEnd of the final event, or 0 for an empty list.
func Length(events []Event) float64 {
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].DestEnd
}
