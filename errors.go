// SPDX-License-Identifier: EPL-2.0

package airmix

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is wrapped into a DecodeError when a clip's format
	// key has no registered decoder.
	ErrUnknownFormat = errors.New("no decoder registered for format")
)

// DecodeError reports that one clip's bytes could not be decoded. It is
// fatal for the whole render request - no partial master is produced - and
// carries the offending clip identity so the caller can point at it.
type DecodeError struct {
	ClipID string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode clip %q: %v", e.ClipID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
