package rbtree

import (
	"iter"
	"math"

	"github.com/npillmayer/attribs/runs"
)

// Cursor walks the runs of one tree version in ascending key order. It is
// one-shot and forward-only; the version is fixed at creation time, so a
// cursor stays valid (but stale) when new versions are derived from the
// tree. Restarting means creating a fresh cursor.
//
// Advancing performs an in-order successor walk over an explicit stack of
// pending ancestors, O(1) amortized per step with O(log n) stack space.
type Cursor[V any] struct {
	stack []*Tree[V]
	cur   *Tree[V]
}

var _ runs.Iterator[int] = &Cursor[int]{}

// RunsEndAfter returns a cursor over all runs which end after start, i.e.
// it starts at the run in effect at offset start (or at the first run when
// none is in effect yet) and walks to the end of the tree.
func (t *Tree[V]) RunsEndAfter(start int64) *Cursor[V] {
	from := int64(math.MinInt64)
	if f := t.Floor(start); f != nil {
		from = f.key
	}
	c := &Cursor[V]{stack: make([]*Tree[V], 0, 2*t.bh())}
	for n := t; n != nil; {
		if n.key >= from {
			c.stack = append(c.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
	return c
}

// Next advances the cursor to the next run.
func (c *Cursor[V]) Next() bool {
	if len(c.stack) == 0 {
		c.cur = nil
		return false
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.cur = n
	for x := n.right; x != nil; x = x.left {
		c.stack = append(c.stack, x)
	}
	return true
}

// Run returns the run at the current cursor position.
func (c *Cursor[V]) Run() runs.Run[V] {
	assert(c.cur != nil, "rbtree: cursor read outside of iteration")
	return runs.Run[V]{Start: c.cur.key, Value: c.cur.value}
}

// Node returns the tree node at the current cursor position.
func (c *Cursor[V]) Node() *Tree[V] {
	assert(c.cur != nil, "rbtree: cursor read outside of iteration")
	return c.cur
}

// Runs returns the runs ending after start as a range-over-func sequence of
// (start offset, value).
func (t *Tree[V]) Runs(start int64) iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		c := t.RunsEndAfter(start)
		for c.Next() {
			r := c.Run()
			if !yield(r.Start, r.Value) {
				return
			}
		}
	}
}

// All returns every run of the tree in ascending key order.
func (t *Tree[V]) All() iter.Seq2[int64, V] {
	return t.Runs(0)
}
