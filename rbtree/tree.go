package rbtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a node of a persistent red-black tree, keyed by non-negative byte
// offset. A nil *Tree is the empty tree; every non-nil node is the root of a
// valid subtree. Nodes are never mutated after construction: editing
// operations allocate the nodes along the touched path and share everything
// else with the previous version.
//
// Invariants:
//   - search order: all keys in left < key < all keys in right,
//   - red rule: a red node has only black (or absent) children,
//   - black balance: left and right agree on black height.
type Tree[V any] struct {
	key         int64
	value       V
	black       bool
	blackHeight int
	left, right *Tree[V]
}

// Key returns the node's offset key.
func (t *Tree[V]) Key() int64 {
	return t.key
}

// Value returns the node's attribute value.
func (t *Tree[V]) Value() V {
	return t.value
}

// Left returns the left subtree, possibly nil.
func (t *Tree[V]) Left() *Tree[V] {
	if t == nil {
		return nil
	}
	return t.left
}

// Right returns the right subtree, possibly nil.
func (t *Tree[V]) Right() *Tree[V] {
	if t == nil {
		return nil
	}
	return t.right
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil
}

// bh returns the black height, treating the empty tree as height 0.
func (t *Tree[V]) bh() int {
	if t == nil {
		return 0
	}
	return t.blackHeight
}

func (t *Tree[V]) isRed() bool {
	return t != nil && !t.black
}

func (t *Tree[V]) isBlackNode() bool {
	return t != nil && t.black
}

// asBlack returns a version of this node painted black. Painting a red root
// black is always legal; it just grows the black height by one.
func (t *Tree[V]) asBlack() *Tree[V] {
	if t == nil || t.black {
		return t
	}
	return &Tree[V]{
		key:         t.key,
		value:       t.value,
		black:       true,
		blackHeight: t.blackHeight + 1,
		left:        t.left,
		right:       t.right,
	}
}

// makeNode allocates a node over two subtrees which must agree on black
// height.
func makeNode[V any](key int64, value V, black bool, left, right *Tree[V]) *Tree[V] {
	assert(left.bh() == right.bh(), "rbtree: black height mismatch between siblings")
	bh := left.bh()
	if black {
		bh++
	}
	return &Tree[V]{
		key:         key,
		value:       value,
		black:       black,
		blackHeight: bh,
		left:        left,
		right:       right,
	}
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[V]) Min() *Tree[V] {
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[V]) Max() *Tree[V] {
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}

// Floor returns the node with the greatest key less than or equal to key,
// or nil if no such node exists. This is the "value in effect at offset key"
// lookup for attribute runs.
func (t *Tree[V]) Floor(key int64) *Tree[V] {
	var floor *Tree[V]
	for t != nil {
		switch {
		case key < t.key:
			t = t.left
		case key > t.key:
			floor = t
			t = t.right
		default:
			return t
		}
	}
	return floor
}

// After returns the node with the smallest key strictly greater than key,
// or nil if no such node exists.
func (t *Tree[V]) After(key int64) *Tree[V] {
	var succ *Tree[V]
	for t != nil {
		if key < t.key {
			succ = t
			t = t.left
		} else {
			t = t.right
		}
	}
	return succ
}

// Insert returns a tree with value stored at key, replacing a present value.
// O(log n); the result shares all untouched subtrees with t.
func (t *Tree[V]) Insert(key int64, value V) *Tree[V] {
	assert(key >= 0, "rbtree: negative offset key")
	return t.insert(key, value).asBlack()
}

func (t *Tree[V]) insert(key int64, value V) *Tree[V] {
	if t == nil {
		return &Tree[V]{key: key, value: value} // fresh nodes start out red
	}
	switch {
	case key < t.key:
		return balance(t.key, t.value, t.black, t.left.insert(key, value), t.right)
	case key > t.key:
		return balance(t.key, t.value, t.black, t.left, t.right.insert(key, value))
	}
	return &Tree[V]{
		key:         key,
		value:       value,
		black:       t.black,
		blackHeight: t.blackHeight,
		left:        t.left,
		right:       t.right,
	}
}

// balance reassembles a node after one child changed, restructuring any of
// the four red-red shapes (left-left, left-right, right-left, right-right)
// into a red node over two black children. The possibly remaining violation
// moves one level up and is resolved by the caller's balance on unwind, so a
// single pass suffices.
func balance[V any](key int64, value V, black bool, l, r *Tree[V]) *Tree[V] {
	if black {
		switch {
		case l.isRed() && l.left.isRed():
			return makeNode(l.key, l.value, false,
				l.left.asBlack(),
				makeNode(key, value, true, l.right, r))
		case l.isRed() && l.right.isRed():
			lr := l.right
			return makeNode(lr.key, lr.value, false,
				makeNode(l.key, l.value, true, l.left, lr.left),
				makeNode(key, value, true, lr.right, r))
		case r.isRed() && r.left.isRed():
			rl := r.left
			return makeNode(rl.key, rl.value, false,
				makeNode(key, value, true, l, rl.left),
				makeNode(r.key, r.value, true, rl.right, r.right))
		case r.isRed() && r.right.isRed():
			return makeNode(r.key, r.value, false,
				makeNode(key, value, true, l, r.left),
				r.right.asBlack())
		}
	}
	return makeNode(key, value, black, l, r)
}
