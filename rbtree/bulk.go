package rbtree

import (
	"math/bits"

	"github.com/npillmayer/attribs/runs"
)

// FromSortedRuns bulk-builds a tree from a run sequence with strictly
// increasing, non-negative start offsets, in O(n).
//
// The slice is bisected recursively. Only nodes on the deepest level of the
// resulting shape are painted red: bisection puts them one below the level
// the shorter root-to-leaf paths end on, so all paths agree on black height
// without any restructuring.
func FromSortedRuns[V any](rs []runs.Run[V]) *Tree[V] {
	if len(rs) == 0 {
		return nil
	}
	assert(rs[0].Start >= 0, "rbtree: negative offset key in bulk build")
	for i := 1; i < len(rs); i++ {
		assert(rs[i-1].Start < rs[i].Start, "rbtree: bulk build input not strictly increasing")
	}
	redDepth := bits.Len(uint(len(rs))) // depth of the deepest possible node
	return buildSorted(rs, 1, redDepth).asBlack()
}

func buildSorted[V any](rs []runs.Run[V], depth, redDepth int) *Tree[V] {
	if len(rs) == 0 {
		return nil
	}
	mid := len(rs) / 2
	left := buildSorted(rs[:mid], depth+1, redDepth)
	right := buildSorted(rs[mid+1:], depth+1, redDepth)
	return makeNode(rs[mid].Start, rs[mid].Value, depth != redDepth, left, right)
}
