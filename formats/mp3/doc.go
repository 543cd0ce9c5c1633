// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG audio via hajimehoshi/go-mp3 and encodes it via
// LAME.
//
// Decoding returns an audio.Source like every other format package; go-mp3
// always yields 16-bit stereo PCM regardless of the source layout.
//
// Encoding is split in two. Encode owns the framing: it quantizes float
// samples with the exact same scaling as the WAV path and feeds the codec
// in 1152-frame blocks, concatenating whatever bytes come back, then
// flushes. The codec itself hides behind the small BlockEncoder interface
// so tests can count blocks without linking LAME, and so a deployment
// without the encoder fails only this output path - WAV mastering keeps
// working.
package mp3
