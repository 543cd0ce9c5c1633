// SPDX-License-Identifier: EPL-2.0

package airmix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/airmix/analysis"
	"github.com/ik5/airmix/audio"
	"github.com/ik5/airmix/formats/aiff"
	"github.com/ik5/airmix/formats/mp3"
	"github.com/ik5/airmix/formats/vorbis"
	"github.com/ik5/airmix/formats/wav"
	"github.com/ik5/airmix/playlist"
	"github.com/ik5/airmix/timeline"
)

// Options configure an Engine. The zero value renders a 44100 Hz stereo
// master with hard cuts preserved.
type Options struct {
	// SampleRate of the master; timeline.MasterRate when 0.
	SampleRate int
	// MinFade softens otherwise hard-cut transitions with a short ramp.
	MinFade bool
}

// Engine renders ordered playlists into a single master buffer. It holds
// no per-request state: every Render call owns its decoded buffers and
// master exclusively, so engines are safe for concurrent use.
type Engine struct {
	registry *audio.Registry
	opts     Options
}

// New creates an Engine decoding clip bytes through registry.
func New(registry *audio.Registry, opts Options) *Engine {
	if opts.SampleRate <= 0 {
		opts.SampleRate = timeline.MasterRate
	}
	return &Engine{registry: registry, opts: opts}
}

// DefaultRegistry returns a registry with all built-in format decoders
// registered under their usual keys.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// resolved pairs a library clip with the category its playlist entry
// declared.
type resolved struct {
	clip     *playlist.Clip
	category playlist.Category
}

// Render runs the whole pipeline for one request: resolve entries, decode
// and analyze every clip (in parallel - clips are independent until the
// timeline fold), build the timeline, and composite the master.
//
// Entries referencing unknown clips are skipped. An empty resolved list
// yields a short silent master. Any decode failure aborts the request with
// a DecodeError naming the clip; ctx cancellation aborts between stages.
func (e *Engine) Render(ctx context.Context, entries []playlist.Entry, lib *playlist.Library) (*audio.Buffer, error) {
	var clips []resolved
	for _, entry := range entries {
		clip, ok := lib.Get(entry.ClipID)
		if !ok {
			continue
		}
		clips = append(clips, resolved{clip: clip, category: entry.Category})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	segs := make([]timeline.Segment, len(clips))
	errs := make([]error, len(clips))

	var wg sync.WaitGroup
	for i := range clips {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			buf, err := e.decodeClip(clips[i].clip)
			if err != nil {
				errs[i] = &DecodeError{ClipID: clips[i].clip.ID, Err: err}
				return
			}

			audio.Normalize(buf)
			segs[i] = timeline.Segment{
				Buffer:   buf,
				Cues:     analysis.DetectCues(buf),
				Category: clips[i].category,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	events := timeline.Build(segs)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	master := timeline.Render(segs, events, timeline.Options{
		SampleRate: e.opts.SampleRate,
		MinFade:    e.opts.MinFade,
	})

	return master, nil
}

// decodeClip turns a clip's encoded bytes into a buffer at the master
// rate.
func (e *Engine) decodeClip(clip *playlist.Clip) (*audio.Buffer, error) {
	dec, ok := e.registry.Get(clip.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, clip.Format)
	}

	src, err := dec.Decode(bytes.NewReader(clip.Data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, e.opts.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}

// EncodeWAV writes master as the canonical bit-exact PCM container.
func EncodeWAV(w io.Writer, master *audio.Buffer) error {
	return wav.Encode(w, master)
}

// EncodeMP3 writes master as 320 kbit/s MPEG audio through enc. A nil enc
// means the external encoder is not configured; that fails only this
// output path - EncodeWAV never depends on it.
func EncodeMP3(w io.Writer, master *audio.Buffer, enc mp3.BlockEncoder) error {
	if enc == nil {
		return mp3.ErrEncoderUnavailable
	}
	return mp3.Encode(w, master, enc)
}
