package huffstream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Encoder holds everything one compression session derives from its
// input: the counts, the Huffman tree, and the codeword table.
//
// The zero value is not usable until Init or InitFrequencies succeeds.
type Encoder struct {
	freq   FrequencyTable
	root   *Node
	codes  CodeTable
	stats  TableStats
	chunks int64
}

// Init initializes this Encoder by counting every chunk of src, building
// the tree for those counts, and deriving its codewords.  An empty src
// yields ErrInvalidArgument.
//
// src is consumed to its end.  To emit the body, the caller supplies a
// reader positioned at the start of the same data to WriteBody.
//
func (e *Encoder) Init(src BitReader) error {
	*e = Encoder{}

	var ft FrequencyTable
	n, err := ft.CountAll(src)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrap(ErrInvalidArgument, "input is empty")
	}
	return e.init(&ft, n)
}

// InitFrequencies initializes this Encoder from counts gathered elsewhere.
func (e *Encoder) InitFrequencies(ft *FrequencyTable) error {
	*e = Encoder{}
	if ft == nil {
		return errors.Wrap(ErrInvalidArgument, "no frequency table")
	}
	return e.init(ft, int64(ft.Total()))
}

func (e *Encoder) init(ft *FrequencyTable, chunks int64) error {
	root, err := BuildTree(ft)
	if err != nil {
		return err
	}
	codes, stats, err := MakeTable(root)
	if err != nil {
		return err
	}
	*e = Encoder{
		freq:   *ft,
		root:   root,
		codes:  codes,
		stats:  stats,
		chunks: chunks,
	}
	return nil
}

// Encode returns the codeword for a Symbol.
func (e *Encoder) Encode(symbol Symbol) (Code, error) {
	if err := e.check(); err != nil {
		return Code{}, err
	}
	hc, ok := e.codes.Get(symbol)
	if !ok {
		return Code{}, errors.Wrapf(ErrInvalidArgument, "symbol %d has no codeword", symbol)
	}
	return hc, nil
}

// Tree returns the Huffman tree, or nil before Init.
func (e *Encoder) Tree() *Node {
	return e.root
}

// Table returns a copy of the codeword table.
func (e *Encoder) Table() CodeTable {
	return e.codes.clone()
}

// Counts returns the nonzero counts of the input.
func (e *Encoder) Counts() map[Symbol]uint64 {
	return e.freq.Sparse()
}

// Chunks is the number of BitsPerWord chunks in the input.
func (e *Encoder) Chunks() int64 {
	return e.chunks
}

// InputBits is the size of the input in bits.
func (e *Encoder) InputBits() int64 {
	return e.chunks * BitsPerWord
}

// HeaderBits is the size of the header WriteHeader will write.
func (e *Encoder) HeaderBits() int64 {
	return e.stats.HeaderBits
}

// EstimatedBits is the size of the complete compressed stream, excluding
// padding: the header, every chunk's codeword, and the sentinel's
// codeword.
func (e *Encoder) EstimatedBits() int64 {
	var body int64
	for symbol, c := range e.freq.counts {
		if c != 0 {
			body += int64(e.codes[symbol].Size) * int64(c)
		}
	}
	return e.stats.HeaderBits + body + int64(e.codes[PseudoEOF].Size)
}

// MinSize is the bit length of the shortest codeword.
func (e *Encoder) MinSize() int {
	return e.stats.MinSize
}

// MaxSize is the bit length of the longest codeword.
func (e *Encoder) MaxSize() int {
	return e.stats.MaxSize
}

// WriteHeader writes the magic number and the serialized tree to w.  It
// returns the number of bits written.
func (e *Encoder) WriteHeader(w BitWriter) (int64, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	return writeHeader(w, e.root)
}

// WriteBody reads src to its end and writes the codeword of every chunk,
// then the codeword of PseudoEOF.  It returns the number of bits written.
//
// src must hold the same data Init counted.  A byte that was never
// counted has no codeword and aborts the write with ErrInvalidArgument.
//
func (e *Encoder) WriteBody(src BitReader, w BitWriter) (int64, error) {
	if err := e.check(); err != nil {
		return 0, err
	}

	var n int64
	for {
		chunk, err := src.ReadBits(BitsPerWord)
		if err != nil {
			if isEOF(err) {
				break
			}
			return n, errors.Wrap(err, "huffstream: failed to read input")
		}
		hc := e.codes[chunk]
		if hc.Size == 0 {
			return n, errors.Wrapf(ErrInvalidArgument, "byte %d was not in the counted input", chunk)
		}
		if err := writeCode(w, hc); err != nil {
			return n, errors.Wrap(err, "huffstream: failed to write output")
		}
		n += int64(hc.Size)
	}

	eof := e.codes[PseudoEOF]
	if err := writeCode(w, eof); err != nil {
		return n, errors.Wrap(err, "huffstream: failed to write output")
	}
	n += int64(eof.Size)
	return n, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tChunks() = %d\n", e.chunks)
	fmt.Fprintf(&buf, "\tHeaderBits() = %d\n", e.stats.HeaderBits)
	fmt.Fprintf(&buf, "\tEstimatedBits() = %d\n", e.EstimatedBits())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.stats.MinSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.stats.MaxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (e *Encoder) check() error {
	if e.root == nil {
		return errors.Wrap(ErrInvalidArgument, "encoder not initialized")
	}
	return nil
}
