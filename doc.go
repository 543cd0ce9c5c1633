// SPDX-License-Identifier: EPL-2.0

// Package airmix renders ordered playlists of audio clips into one
// continuous broadcast-ready master: silence trimming, peak normalization,
// heuristic crossfade placement, sample-accurate mixing, and binary
// encoding.
//
// # Pipeline
//
// A render request flows through five stages:
//
//	decode -> normalize -> cue analysis   (per clip, independent)
//	timeline build -> render -> encode    (across all clips, sequential)
//
// Each clip is decoded to float samples, unified to the master rate, peak
// normalized to about -1 dBFS, and scanned for cue points: where audible
// material starts and ends, and where its trailing decay crosses -15 dB
// and -6 dB. The timeline builder folds those measurements into placement
// events with a single monotonic cursor; wherever the cursor stops short
// of a clip's trimmed end, the next clip overlaps it and the renderer
// realizes a crossfade.
//
// # Quick Start
//
//	lib := playlist.NewLibrary()
//	lib.Add(&playlist.Clip{ID: "song-1", Category: playlist.Music, Format: "mp3", Data: songBytes})
//	lib.Add(&playlist.Clip{ID: "sweep", Category: playlist.Jingle, Format: "wav", Data: sweepBytes})
//
//	engine := airmix.New(airmix.DefaultRegistry(), airmix.Options{})
//	master, err := engine.Render(ctx, []playlist.Entry{
//	    {ClipID: "song-1", Category: playlist.Music},
//	    {ClipID: "sweep", Category: playlist.Jingle},
//	}, lib)
//	if err != nil {
//	    ...
//	}
//
//	var out bytes.Buffer
//	airmix.EncodeWAV(&out, master)
//
// # Outputs
//
// The WAV path is bit-exact and always available. The MP3 path delegates
// to an external LAME encoder (formats/mp3.NewLameEncoder); when that is
// not configured, EncodeMP3 fails with mp3.ErrEncoderUnavailable and the
// WAV path is unaffected.
//
// # Failure Model
//
// Playlist entries that reference unknown clips are skipped silently; an
// empty resolved playlist renders one second of silence rather than
// failing. A clip whose bytes cannot be decoded aborts the whole request
// with a DecodeError naming the clip - no partial master is ever handed to
// an encoder. The engine never retries; the caller decides whether to
// re-issue a request.
package airmix
