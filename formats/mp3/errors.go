package mp3

import "errors"

var (
	ErrNoChannels         = errors.New("buffer has no channels")
	ErrEncoderUnavailable = errors.New("mp3 encoder unavailable")
)
