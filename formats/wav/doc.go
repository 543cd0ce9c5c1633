// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAVE streams.
//
// The decoder handles the canonical 44-byte layout (RIFF + single fmt
// chunk + data) that this package itself produces, which is also what the
// station's ingest pipeline hands over. Anything fancier - extensible
// headers, extra chunks, other bit depths - is rejected with a sentinel
// error rather than guessed at.
//
// The encoder is the canonical master output format: its byte layout is
// fixed and reproducible, so archived masters can be compared
// bit-for-bit. Sample quantization is shared with the MP3 path via
// utils.SampleToPCM16.
//
//	var out bytes.Buffer
//	if err := wav.Encode(&out, master); err != nil {
//	    ...
//	}
package wav
