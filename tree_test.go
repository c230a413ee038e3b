package huffstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T, s string) *Node {
	t.Helper()
	var ft FrequencyTable
	_, err := ft.CountAll(bitReaderFor(s))
	require.NoError(t, err)
	root, err := BuildTree(&ft)
	require.NoError(t, err)
	return root
}

// shape renders a tree as nested parentheses of leaf symbols.
func shape(node *Node) string {
	if node.IsLeaf() {
		if node.Symbol == PseudoEOF {
			return "EOF"
		}
		return string(rune(node.Symbol))
	}
	return "(" + shape(node.Left) + " " + shape(node.Right) + ")"
}

func TestBuildTree(t *testing.T) {
	root := buildTestTree(t, testString)

	require.Equal(t, uint64(11), root.Weight)
	leaves, internals := root.Count()
	require.Equal(t, 8, leaves)
	require.Equal(t, 7, internals)
	require.Equal(t, "(((e EOF) (r i)) (t (s (g n))))", shape(root))

	require.Equal(t, uint64(4), root.Left.Weight)
	require.Equal(t, uint64(7), root.Right.Weight)
}

func TestBuildTree_Deterministic(t *testing.T) {
	data := string(makeTestData(4096))
	a := buildTestTree(t, data)
	b := buildTestTree(t, data)
	require.Equal(t, shape(a), shape(b))
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := buildTestTree(t, "aaaa")

	require.Equal(t, "(EOF a)", shape(root))
	require.Equal(t, uint64(5), root.Weight)
	leaves, internals := root.Count()
	require.Equal(t, 2, leaves)
	require.Equal(t, 1, internals)
}

func TestBuildTree_Empty(t *testing.T) {
	var ft FrequencyTable
	root, err := BuildTree(&ft)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Nil(t, root)

	root, err = BuildTree(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Nil(t, root)
}

func TestNode_CountMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Count on an internal node without children to panic")
		}
	}()
	node := &Node{Kind: InternalNode, Symbol: InvalidSymbol}
	node.Count()
}
