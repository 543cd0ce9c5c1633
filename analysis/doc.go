// SPDX-License-Identifier: EPL-2.0

// Package analysis detects cue and mix points in decoded audio.
//
// All measurements happen in the logarithmic domain on the first channel of
// a clip. Four scalar times come out of DetectCues:
//
//   - cue-in: first sample louder than -25 dB (silence trim at the front)
//   - cue-out: last sample louder than -28 dB (silence trim at the back,
//     failing open to the full duration)
//   - two mix candidates: the last samples louder than -15 dB and -6 dB
//     before cue-out
//
// The distance between the two mix candidates measures how fast the clip
// decays: a sharp ending keeps them close together, a long fade-out pulls
// them apart. EffectiveMixPoint turns that measurement plus the clip
// categories into the single time where the next clip starts blending in.
package analysis
