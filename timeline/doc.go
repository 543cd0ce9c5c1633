// SPDX-License-Identifier: EPL-2.0

// Package timeline turns analyzed clips into a rendered master.
//
// Build walks the playlist once with a single monotonic cursor and emits
// one placement event per clip: where the clip's trimmed window lands on
// the master timeline. Because the cursor advances only to each clip's
// effective mix point, consecutive events overlap wherever a crossfade
// should happen.
//
// Render composites the events into a fixed-rate stereo buffer. Overlap
// regions are summed additively; per-event gain envelopes ramp the outgoing
// clip to zero across the overlap, and the final event fades out over its
// last second. Middle events without overlap cut hard by default (matching
// observed playout behavior); Options.MinFade softens them with a short
// ramp when wanted.
package timeline
