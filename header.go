package huffstream

import (
	"github.com/pkg/errors"
)

// MagicNumber opens every compressed stream.
const MagicNumber uint32 = 1234567873

// writeHeader writes the magic number followed by the tree in preorder:
// a 0 bit for each internal node, a 1 bit and the SymbolBits-bit symbol for
// each leaf.  It returns the number of bits written.
func writeHeader(w BitWriter, root *Node) (int64, error) {
	if err := w.WriteBits(uint64(MagicNumber), BitsPerInt); err != nil {
		return 0, errors.Wrap(err, "huffstream: failed to write magic number")
	}
	n := int64(BitsPerInt)

	err := walk(root, func(node *Node, _ Code) error {
		if !node.IsLeaf() {
			n++
			return w.WriteBits(0, 1)
		}
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		n += 1 + SymbolBits
		return w.WriteBits(uint64(node.Symbol), SymbolBits)
	})
	if err != nil {
		return n, errors.Wrap(err, "huffstream: failed to write header")
	}
	return n, nil
}

// readHeader checks the magic number and rebuilds the tree that follows
// it.  Only the shape is recovered; every weight is zero.
//
// A well-formed tree has at most NumSymbols leaves, each with a distinct
// symbol in [0, PseudoEOF], at most NumSymbols-1 internal nodes, and is not
// a bare leaf.  Anything else is ErrFormat.
func readHeader(r BitReader) (*Node, error) {
	magic, err := r.ReadBits(BitsPerInt)
	if err != nil {
		return nil, readErr(err, "huffstream: failed to read magic number")
	}
	if uint32(magic) != MagicNumber {
		return nil, errors.Wrapf(ErrFormat, "magic number %#08x, expected %#08x", magic, MagicNumber)
	}

	var (
		root      *Node
		pending   []*Node // internal nodes still missing a child
		seen      [NumSymbols]bool
		internals int
	)

	attach := func(node *Node) {
		if root == nil {
			root = node
			return
		}
		parent := pending[len(pending)-1]
		if parent.Left == nil {
			parent.Left = node
		} else {
			parent.Right = node
			pending = pending[:len(pending)-1]
		}
	}

	for root == nil || len(pending) != 0 {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, readErr(err, "huffstream: failed to read header")
		}

		if bit == 0 {
			// A tree over NumSymbols leaves has one fewer internal node.
			internals++
			if internals > NumSymbols-1 {
				return nil, errors.Wrap(ErrFormat, "header tree has too many nodes")
			}
			node := &Node{Kind: InternalNode, Symbol: InvalidSymbol}
			attach(node)
			pending = append(pending, node)
			continue
		}

		value, err := r.ReadBits(SymbolBits)
		if err != nil {
			return nil, readErr(err, "huffstream: failed to read header")
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrFormat, "header leaf has symbol %d", symbol)
		}
		if seen[symbol] {
			return nil, errors.Wrapf(ErrFormat, "header leaf symbol %d repeated", symbol)
		}
		seen[symbol] = true
		attach(NewLeaf(symbol, 0))
	}

	if root.IsLeaf() {
		return nil, errors.Wrapf(ErrFormat, "header tree is a single leaf (symbol %d)", root.Symbol)
	}
	if !seen[PseudoEOF] {
		return nil, errors.Wrap(ErrFormat, "header tree has no end-of-stream symbol")
	}
	return root, nil
}
