package huffstream

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Decoder reconstructs a Huffman tree from a stream header and uses it to
// decode the body that follows.
type Decoder struct {
	root  *Node
	codes CodeTable
	stats TableStats
}

// ReadHeader initializes this Decoder from the header at the start of r.
//
// A magic number mismatch or a malformed tree is ErrFormat; running out of
// input inside the header is ErrTruncated.
//
func (d *Decoder) ReadHeader(r BitReader) error {
	*d = Decoder{}

	root, err := readHeader(r)
	if err != nil {
		return err
	}
	codes, stats, err := MakeTable(root)
	if err != nil {
		return errors.Wrap(ErrFormat, err.Error())
	}

	*d = Decoder{root: root, codes: codes, stats: stats}
	log.Debugf("read header: %d bits, %d leaves", stats.HeaderBits, stats.Leaves)
	return nil
}

// Decode reads codewords from r, writing the BitsPerWord-bit value of each
// decoded symbol to w, until it decodes PseudoEOF.  It returns the number of
// payload bits written; the header and the sentinel are not counted.
//
// Starting from the root, each bit read selects the left (0) or right (1)
// child.  Reaching a leaf completes one codeword; the walk then restarts at
// the root.  Input that ends before PseudoEOF is ErrTruncated.
//
func (d *Decoder) Decode(r BitReader, w BitWriter) (int64, error) {
	if d.root == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "decoder has no tree; call ReadHeader first")
	}

	var n int64
	cursor := d.root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return n, readErr(err, "huffstream: failed to read codeword")
		}

		if bit == 0 {
			cursor = cursor.Left
		} else {
			cursor = cursor.Right
		}

		if !cursor.IsLeaf() {
			continue
		}
		if cursor.Symbol == PseudoEOF {
			return n, nil
		}
		if err := w.WriteBits(uint64(cursor.Symbol), BitsPerWord); err != nil {
			return n, errors.Wrap(err, "huffstream: failed to write output")
		}
		n += BitsPerWord
		cursor = d.root
	}
}

// Tree returns the reconstructed tree, or nil before ReadHeader.
func (d *Decoder) Tree() *Node {
	return d.root
}

// Table returns a copy of the codeword table derived from the tree.
func (d *Decoder) Table() CodeTable {
	return d.codes.clone()
}

// HeaderBits is the size of the header that was read.
func (d *Decoder) HeaderBits() int64 {
	return d.stats.HeaderBits
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tHeaderBits() = %d\n", d.stats.HeaderBits)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.stats.MinSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.stats.MaxSize)
	keys := make(byCode, 0, d.stats.Leaves)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if hc := d.codes[symbol]; hc.Size != 0 {
			keys = append(keys, symbolAndCode{symbol, hc})
		}
	}
	keys.Sort()
	for _, item := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", item.code, item.symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.bitString() < b.bitString()
}

var _ sort.Interface = byCode(nil)

// }}}
