package huffstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitReader is the read side of the bit-stream primitive.  ReadBits returns
// the next n bits as an unsigned value, first bit most significant, or
// io.EOF once the stream is exhausted.
//
// *bitio.Reader implements BitReader.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the write side of the bit-stream primitive.  WriteBits
// writes the low n bits of r, most significant first.
//
// *bitio.Writer implements BitWriter.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// rewind resets src to its first byte and returns a fresh bit reader over
// it.  Any bits buffered by a previous reader are discarded.
func rewind(src io.ReadSeeker) (*bitio.Reader, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "huffstream: failed to rewind source")
	}
	return bitio.NewReader(src), nil
}
