package huffstream

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is the class of caller errors: empty paths,
	// out-of-range symbols, empty input, or use before initialization.
	ErrInvalidArgument = errors.New("huffstream: invalid argument")

	// ErrFormat is the class of malformed compressed input, starting with
	// a magic number mismatch.
	ErrFormat = errors.New("huffstream: bad compressed data")

	// ErrTruncated reports that the input ended before the sentinel.
	ErrTruncated = errors.New("huffstream: unexpected end of compressed data")

	// ErrIncompressible is returned, together with the size estimate, when
	// compressing without force would not shrink the input.  Nothing has
	// been written in that case.
	ErrIncompressible = errors.New("huffstream: compressed form would not be smaller")
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// readErr maps the end-of-stream marker to ErrTruncated and wraps
// everything else.
func readErr(err error, what string) error {
	if isEOF(err) {
		return errors.Wrap(ErrTruncated, what)
	}
	return errors.Wrap(err, what)
}
