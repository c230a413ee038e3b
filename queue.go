package huffstream

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// type nodeQueue {{{

// nodeQueue is a min-heap of partially built trees, keyed by root weight.
//
// Equal weights are not broken by any secondary key: the order in which
// ties come out is fixed by the heap's sift sequence over the insertion
// order, which BuildTree keeps deterministic.
type nodeQueue struct {
	list []*Node
}

func newNodeQueue(nodes []*Node) *nodeQueue {
	q := &nodeQueue{list: nodes}
	heap.Init(q)
	return q
}

// Insert adds a tree to the queue.
func (q *nodeQueue) Insert(node *Node) {
	heap.Push(q, node)
}

// RemoveMin removes and returns the lightest tree.  The queue must not be
// empty.
func (q *nodeQueue) RemoveMin() *Node {
	assert.Assertf(len(q.list) != 0, "RemoveMin called on an empty queue")
	return heap.Pop(q).(*Node)
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	return q.list[i].Weight < q.list[j].Weight
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(*Node))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list[last] = nil
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
