package huffstream

import (
	"github.com/pkg/errors"
)

// CodeTable maps each Symbol to its codeword.  Symbols absent from the
// tree have a zero-Size entry.
type CodeTable [NumSymbols]Code

// Get returns the codeword for symbol, if symbol is in the table.
func (t *CodeTable) Get(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || t[symbol].Size == 0 {
		return Code{}, false
	}
	return t[symbol], true
}

// Len returns the number of symbols in the table.
func (t *CodeTable) Len() int {
	var n int
	for _, hc := range t {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// clone returns a copy of t that shares no codeword storage with it.
func (t *CodeTable) clone() CodeTable {
	var out CodeTable
	for i, hc := range t {
		if hc.Bits != nil {
			hc.Bits = append([]byte(nil), hc.Bits...)
		}
		out[i] = hc
	}
	return out
}

// TableStats summarizes the tree a CodeTable was derived from.
type TableStats struct {
	// HeaderBits is the exact size of the header that describes the
	// tree: BitsPerInt + (1+SymbolBits)×Leaves + 1×Internals.
	HeaderBits int64

	Leaves    int
	Internals int

	// MinSize and MaxSize are the lengths of the shortest and longest
	// codewords.
	MinSize int
	MaxSize int
}

// MakeTable derives the codeword of every leaf in the tree rooted at root:
// the path from the root, "0" for each left branch and "1" for each right
// branch.
//
// A tree which is a single bare leaf has no meaningful codewords and is
// rejected with ErrInvalidArgument.
func MakeTable(root *Node) (CodeTable, TableStats, error) {
	var table CodeTable
	var stats TableStats

	if root == nil {
		return table, stats, errors.Wrap(ErrInvalidArgument, "no tree")
	}
	if root.IsLeaf() {
		return table, stats, errors.Wrapf(ErrInvalidArgument, "tree is a single leaf (symbol %d)", root.Symbol)
	}

	stats.HeaderBits = BitsPerInt
	err := walk(root, func(node *Node, path Code) error {
		if !node.IsLeaf() {
			stats.Internals++
			stats.HeaderBits++
			return nil
		}
		if !node.Symbol.IsValid() {
			return errors.Wrapf(ErrInvalidArgument, "leaf has invalid symbol %d", node.Symbol)
		}
		if table[node.Symbol].Size != 0 {
			return errors.Wrapf(ErrInvalidArgument, "symbol %d appears twice in tree", node.Symbol)
		}
		table[node.Symbol] = path
		stats.Leaves++
		stats.HeaderBits += 1 + SymbolBits

		if stats.Leaves == 1 {
			stats.MinSize, stats.MaxSize = path.Size, path.Size
		} else if stats.MinSize > path.Size {
			stats.MinSize = path.Size
		} else if stats.MaxSize < path.Size {
			stats.MaxSize = path.Size
		}
		return nil
	})
	if err != nil {
		return CodeTable{}, TableStats{}, err
	}
	return table, stats, nil
}
