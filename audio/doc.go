// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level primitives of the render pipeline.
//
// This package contains the building blocks every other stage works with:
//   - Source interface for streaming decoded audio
//   - Buffer for whole-clip sample storage
//   - Resampler for sample rate unification
//   - Normalize for peak normalization
//   - Registry for decoder registration by format key
//
// # Source Interface
//
// The Source interface is the contract every format decoder fulfills:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples yields interleaved float32 samples in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Buffers
//
// Unlike a streaming pipeline, cue analysis and timeline rendering need
// random access to a whole clip. ReadAll drains a Source into a Buffer of
// per-channel sample slices, resampling on the way when the source rate
// differs from the requested one:
//
//	buf, err := audio.ReadAll(src, 44100)
//
// A Buffer belongs to exactly one render request and is discarded after the
// master has been encoded.
//
// # Normalization
//
// Normalize scales a buffer in place so its peak lands at about -1 dBFS
// (0.89125 linear). Silent buffers pass through unchanged:
//
//	gain := audio.Normalize(buf)
//
// # Resampling
//
// The Resampler changes the sample rate of a stream using cubic
// interpolation and works for both upsampling and downsampling. It is
// normally driven through ReadAll rather than used directly.
//
// # Format Registry
//
// The registry maps format keys to decoders so a playlist clip's format
// string resolves to the right codec:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. Other
// errors indicate problems with the source or processing.
package audio
