package huffstream

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// NodeKind discriminates the two kinds of Node.
type NodeKind uint8

const (
	// LeafNode holds a Symbol and its weight.
	LeafNode NodeKind = iota

	// InternalNode holds two children and the sum of their weights.
	InternalNode
)

// Node is a node of a Huffman tree.  Leaves use Symbol; internal nodes
// use Left and Right.  Each internal node exclusively owns its children.
//
// Trees reconstructed from a header carry zero weights throughout: only
// their shape is meaningful.
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf returns a leaf for symbol with the given weight.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Kind: LeafNode, Symbol: symbol, Weight: weight}
}

// NewInternal returns an internal node over left and right.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children")
	return &Node{
		Kind:   InternalNode,
		Symbol: InvalidSymbol,
		Weight: left.Weight + right.Weight,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this is a leaf.
func (node *Node) IsLeaf() bool {
	return node.Kind == LeafNode
}

// Count returns the number of leaves and internal nodes in the tree rooted
// at this node.
func (node *Node) Count() (leaves int, internals int) {
	err := walk(node, func(n *Node, _ Code) error {
		if n.IsLeaf() {
			leaves++
		} else {
			internals++
		}
		return nil
	})
	assert.Assertf(err == nil, "malformed tree: %v", err)
	return
}

// BuildTree builds the Huffman tree for the counts in ft.
//
// Every symbol with a nonzero count becomes a leaf weighted by its count,
// and one PseudoEOF leaf of weight 1 is always added.  The two lightest
// trees are then merged repeatedly, the first one removed becoming the
// left child, until a single tree remains.
//
// An empty table has nothing to compress and yields ErrInvalidArgument.
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Total() == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "cannot build a tree from empty input")
	}

	// Seed in ascending symbol order with the sentinel last; this order,
	// together with the heap's sift sequence, fixes how ties resolve.
	symbols := ft.Symbols()
	nodes := make([]*Node, 0, len(symbols)+1)
	for _, symbol := range symbols {
		nodes = append(nodes, NewLeaf(symbol, ft.counts[symbol]))
	}
	nodes = append(nodes, NewLeaf(PseudoEOF, 1))

	q := newNodeQueue(nodes)
	for q.Len() > 1 {
		a := q.RemoveMin()
		b := q.RemoveMin()
		q.Insert(NewInternal(a, b))
	}
	root := q.RemoveMin()

	log.Debugf("built tree: %d symbols + EOF, weight %d", len(symbols), root.Weight)
	return root, nil
}

// walk visits every node of the tree rooted at root in preorder, passing
// each node the path that leads to it from root ("0" = left, "1" = right).
// The walk stops at the first error returned by fn.
//
// A stack keeps the walk iterative.  A maximally skewed tree over
// NumSymbols leaves is 256 levels deep.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func walk(root *Node, fn func(node *Node, path Code) error) error {
	type stackItem struct {
		node *Node
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	visit := func(node *Node, path Code) error {
		if node == nil {
			return errors.Wrap(ErrInvalidArgument, "tree has a missing node")
		}
		if err := fn(node, path); err != nil {
			return err
		}
		if !node.IsLeaf() {
			stack = append(stack, stackItem{node: node, path: path})
		}
		return nil
	}

	if err := visit(root, Code{}); err != nil {
		return err
	}
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var err error
		switch x {
		case 0:
			err = visit(top.node.Left, top.path.Append(0))
		case 1:
			err = visit(top.node.Right, top.path.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return err
		}
	}
	return nil
}
