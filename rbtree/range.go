package rbtree

import "math"

// Unbounded marks a range overwrite extending to the end of the text.
// It is a sentinel, never an ordinary key.
const Unbounded int64 = math.MaxInt64

// InsertRange overwrites the offsets [start, end) of a run tree with value
// and returns the new tree; tree may be nil. end == Unbounded extends the
// overwrite to infinity. equals decides run equality (including zero
// values, which stand for "attribute not set").
//
// The cost is O(log n) regardless of how many change-points the overwritten
// range previously contained: the tree is split around the range, the value
// in effect at end is carried over as the new boundary, and the surviving
// parts are re-joined.
//
// Boundary nodes are dropped when they would repeat the value of their left
// neighbor run, so the result never contains two adjacent runs with equal
// values (provided tree was canonical in that sense before).
func InsertRange[V any](tree *Tree[V], start, end int64, value V, equals func(V, V) bool) *Tree[V] {
	assert(start >= 0, "rbtree: negative range start")
	assert(start < end, "rbtree: empty or inverted range")
	assert(equals != nil, "rbtree: range overwrite requires an equality predicate")

	var left *Tree[V]
	if start > 0 {
		left = tree.TakeLessThan(start)
	}
	var right *Tree[V]
	var restored V // value back in effect at end; zero V when none was set
	if end != Unbounded {
		if n := tree.Floor(end); n != nil {
			restored = n.value
		}
		right = tree.SkipUntil(end + 1)
	}

	newTree := left
	if left == nil || !equals(left.Max().value, value) {
		newTree = newTree.Insert(start, value)
	}
	if end != Unbounded && !equals(restored, value) {
		newTree = newTree.Insert(end, restored)
	}
	if right == nil {
		return newTree
	}
	if newTree == nil {
		return right
	}
	// Split off the maximum of newTree as the join pivot; everything in
	// right is greater than end >= newTree.Max().
	pivot := newTree.Max()
	return newTree.TakeLessThan(pivot.key).Join(right, pivot.key, pivot.value)
}
