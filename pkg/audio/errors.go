package audio

import "github.com/joomcode/errorx"

// Errors is the namespace of audio errors.
var Errors = errorx.NewNamespace("audio")

var (
	// ErrInvalidFile is returned for input that is not a PCM WAV stream.
	ErrInvalidFile = Errors.NewType("invalid_file")
	// ErrInvalidStream is returned when a chunk does not belong to the stream of a sink.
	ErrInvalidStream = Errors.NewType("invalid_stream")
	// ErrClosed is returned when a chunk is appended to a closed sink.
	ErrClosed = Errors.NewType("closed")
)
