package huffstream

import (
	"io"
	"os"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Compress compresses the file at srcPath into a new file at dstPath and
// returns the number of bits written, padding excluded.
//
// Unless force is set, Compress first checks that the result would be
// smaller than the input.  If not, dstPath is left untouched and the
// estimated size is returned along with ErrIncompressible.
//
func Compress(srcPath, dstPath string, force bool) (int64, error) {
	if srcPath == "" || dstPath == "" {
		return 0, errors.Wrap(ErrInvalidArgument, "empty file path")
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer src.Close()

	if err := checkDistinct(src, dstPath); err != nil {
		return 0, err
	}

	var e Encoder
	if estimate, err := prepare(&e, src, force); err != nil {
		return estimate, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	n, err := emit(&e, dst, src)
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = errors.WithStack(cerr)
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return n, err
	}
	log.Debugf("compressed %s (%d bits) to %s (%d bits)", srcPath, e.InputBits(), dstPath, n)
	return n, nil
}

// CompressStream is like Compress, but reads from src and writes to dst.
// src is read twice, once to count and once to encode; both passes start
// from offset 0.  Nothing is written to dst when ErrIncompressible is
// returned.
func CompressStream(dst io.Writer, src io.ReadSeeker, force bool) (int64, error) {
	if dst == nil || src == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "nil stream")
	}

	var e Encoder
	if estimate, err := prepare(&e, src, force); err != nil {
		return estimate, err
	}
	return emit(&e, dst, src)
}

// Decompress decompresses the file at srcPath into a new file at dstPath.
// It returns the number of payload bits written.  On failure, the partial
// output is removed.
//
// For both Compress and Decompress, a dstPath naming the same file as
// srcPath is ErrInvalidArgument.
func Decompress(srcPath, dstPath string) (int64, error) {
	if srcPath == "" || dstPath == "" {
		return 0, errors.Wrap(ErrInvalidArgument, "empty file path")
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer src.Close()

	if err := checkDistinct(src, dstPath); err != nil {
		return 0, err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	n, err := DecompressStream(dst, src)
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = errors.WithStack(cerr)
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return n, err
	}
	log.Debugf("decompressed %s to %s (%d bits)", srcPath, dstPath, n)
	return n, nil
}

// DecompressStream is like Decompress, but reads from src and writes to
// dst.
func DecompressStream(dst io.Writer, src io.Reader) (int64, error) {
	if dst == nil || src == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "nil stream")
	}

	r := bitio.NewReader(src)
	var d Decoder
	if err := d.ReadHeader(r); err != nil {
		return 0, err
	}

	w := bitio.NewWriter(dst)
	n, err := d.Decode(r, w)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "huffstream: failed to flush output")
	}
	return n, err
}

// checkDistinct fails if dstPath already exists and is the file src was
// opened from, since creating dstPath would truncate the input.
func checkDistinct(src *os.File, dstPath string) error {
	dstInfo, err := os.Stat(dstPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.WithStack(err)
	}
	srcInfo, err := src.Stat()
	if err != nil {
		return errors.WithStack(err)
	}
	if os.SameFile(srcInfo, dstInfo) {
		return errors.Wrapf(ErrInvalidArgument, "%s is both input and output", dstPath)
	}
	return nil
}

// prepare runs the counting pass over src and decides whether the encoding
// is worth writing.  A non-nil error means nothing may be written; with
// ErrIncompressible the returned estimate is still meaningful.
func prepare(e *Encoder, src io.ReadSeeker, force bool) (int64, error) {
	r, err := rewind(src)
	if err != nil {
		return 0, err
	}
	if err := e.Init(r); err != nil {
		return 0, err
	}

	estimate, input := e.EstimatedBits(), e.InputBits()
	log.Debugf("estimate %d bits for %d bits of input (header %d bits)", estimate, input, e.HeaderBits())
	if estimate > input && !force {
		return estimate, errors.Wrapf(ErrIncompressible, "%d bits estimated for %d bits of input", estimate, input)
	}
	return estimate, nil
}

// emit writes the header, then re-reads src from the start to write the
// body.  The final partial byte is zero-padded.
func emit(e *Encoder, dst io.Writer, src io.ReadSeeker) (int64, error) {
	w := bitio.NewWriter(dst)

	header, err := e.WriteHeader(w)
	if err != nil {
		return header, err
	}

	r, err := rewind(src)
	if err != nil {
		return header, err
	}
	body, err := e.WriteBody(r, w)
	n := header + body
	if err != nil {
		return n, err
	}

	if err := w.Close(); err != nil {
		return n, errors.Wrap(err, "huffstream: failed to flush output")
	}
	return n, nil
}
