// SPDX-License-Identifier: EPL-2.0

// Package playlist holds the domain model consumed by the render engine:
// clips, playlist entries, and the library that resolves entry references
// to clips.
//
// The engine does not decide play order. An already-ordered list of entries
// arrives from the playlist editor (or an external recommendation service)
// and is rendered as-is. Entries that reference an identity missing from
// the library contribute nothing to the master; they are skipped silently.
package playlist
