package rbtree

// Join concatenates t (all keys < key), a pivot node (key, value), and
// right (all keys > key) into one balanced tree in O(log n). The key order
// is a caller-enforced precondition.
//
// The implementation descends along the outer spine of the taller side until
// the black heights match, plants a red pivot node there and restores the
// red-black shape with the same restructuring insert uses.
func (t *Tree[V]) Join(right *Tree[V], key int64, value V) *Tree[V] {
	assert(key >= 0, "rbtree: negative offset key")
	if t == nil {
		return right.Insert(key, value)
	}
	if right == nil {
		return t.Insert(key, value)
	}
	assert(t.Max().key < key, "rbtree: join pivot not greater than left tree")
	assert(right.Min().key > key, "rbtree: join pivot not less than right tree")
	l, r := t.asBlack(), right.asBlack()
	if l.blackHeight >= r.blackHeight {
		return l.joinRight(r, key, value).asBlack()
	}
	return r.joinLeft(l, key, value).asBlack()
}

// joinRight plants (key, value, r) below t's right spine.
// t and r are black and bh(t) >= bh(r).
func (t *Tree[V]) joinRight(r *Tree[V], key int64, value V) *Tree[V] {
	if t.isBlackNode() && t.blackHeight == r.blackHeight {
		return makeNode(key, value, false, t, r)
	}
	return balance(t.key, t.value, t.black, t.left, t.right.joinRight(r, key, value))
}

// joinLeft plants (l, key, value) below t's left spine.
// t and l are black and bh(t) >= bh(l).
func (t *Tree[V]) joinLeft(l *Tree[V], key int64, value V) *Tree[V] {
	if t.isBlackNode() && t.blackHeight == l.blackHeight {
		return makeNode(key, value, false, l, t)
	}
	return balance(t.key, t.value, t.black, t.left.joinLeft(l, key, value), t.right)
}

// TakeLessThan returns the subtree of all keys strictly less than key, or
// nil when no key qualifies. The fragments encountered along the single
// root-to-leaf descent are re-joined, which keeps the result balanced
// without dedicated rebalancing code.
func (t *Tree[V]) TakeLessThan(key int64) *Tree[V] {
	if t == nil {
		return nil
	}
	if key <= t.key {
		return t.left.TakeLessThan(key)
	}
	return t.left.Join(t.right.TakeLessThan(key), t.key, t.value)
}

// SkipUntil returns the subtree of all keys greater than or equal to key,
// or nil when no key qualifies. Symmetric counterpart of TakeLessThan.
func (t *Tree[V]) SkipUntil(key int64) *Tree[V] {
	if t == nil {
		return nil
	}
	if key > t.key {
		return t.right.SkipUntil(key)
	}
	return t.left.SkipUntil(key).Join(t.right, t.key, t.value)
}
