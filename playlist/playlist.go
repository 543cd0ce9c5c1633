// SPDX-License-Identifier: EPL-2.0

package playlist

import "sync"

// Category classifies a clip for the mix-point heuristics. Voice clips get
// special transition handling (short tails, earlier mix into spoken content).
type Category int

const (
	Music Category = iota
	Jingle
	Commercial
	Voice
	Other
)

func (c Category) String() string {
	switch c {
	case Music:
		return "music"
	case Jingle:
		return "jingle"
	case Commercial:
		return "commercial"
	case Voice:
		return "voice"
	default:
		return "other"
	}
}

// Clip is a single audio asset available to the engine. It is immutable once
// created and owned by the caller; the engine only references it.
type Clip struct {
	// ID identifies the clip within a Library.
	ID string
	// Category of the program material.
	Category Category
	// Duration is the nominal length in seconds, as reported at ingest.
	Duration float64
	// Format is the decode registry key for Data ("wav", "mp3", "ogg", "aiff").
	Format string
	// Data holds the encoded bytes.
	Data []byte
}

// Entry is one position in an ordered playlist. The category is copied from
// the clip at playlist generation time; FadeHint is informational only - the
// engine computes actual overlap from signal analysis, not from this value.
type Entry struct {
	ClipID   string
	Category Category
	FadeHint float64
}

// Library resolves clip identities to clips. Entries referencing unknown
// identities are skipped by the engine, so lookups never fail hard.
type Library struct {
	mtx   sync.RWMutex
	clips map[string]*Clip
}

func NewLibrary() *Library {
	return &Library{clips: make(map[string]*Clip)}
}

// Add registers a clip, replacing any previous clip with the same ID.
func (l *Library) Add(c *Clip) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	l.clips[c.ID] = c
}

// Get returns the clip for id, or ok=false when the id is unknown.
func (l *Library) Get(id string) (*Clip, bool) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	c, ok := l.clips[id]
	return c, ok
}

// Len returns the number of clips in the library.
func (l *Library) Len() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	return len(l.clips)
}
