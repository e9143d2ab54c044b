package rbtree

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvariantViolated signals a structural defect found by Check. It always
// indicates a bug in the balancing code, never a data-driven condition.
var ErrInvariantViolated = errors.New("rbtree: invariant violated")

// Check validates the structural invariants of the tree: search order,
// the red rule, black balance, and the per-node black-height bookkeeping.
// It walks the whole tree and is meant for tests and debug assertions only.
func (t *Tree[V]) Check() error {
	_, err := t.checkNode(math.MinInt64, math.MaxInt64)
	if err != nil {
		return err
	}
	if t.isRed() {
		return fmt.Errorf("%w: red root", ErrInvariantViolated)
	}
	return nil
}

// checkNode returns the measured black height of the subtree.
func (t *Tree[V]) checkNode(lo, hi int64) (int, error) {
	if t == nil {
		return 0, nil
	}
	if t.key < lo || t.key > hi {
		return 0, fmt.Errorf("%w: key %d outside of (%d, %d)", ErrInvariantViolated, t.key, lo, hi)
	}
	if t.isRed() && (t.left.isRed() || t.right.isRed()) {
		return 0, fmt.Errorf("%w: red node %d has a red child", ErrInvariantViolated, t.key)
	}
	lbh, err := t.left.checkNode(lo, t.key-1)
	if err != nil {
		return 0, err
	}
	rbh, err := t.right.checkNode(t.key+1, hi)
	if err != nil {
		return 0, err
	}
	if lbh != rbh {
		return 0, fmt.Errorf("%w: node %d has black heights %d/%d", ErrInvariantViolated, t.key, lbh, rbh)
	}
	bh := lbh
	if t.black {
		bh++
	}
	if bh != t.blackHeight {
		return 0, fmt.Errorf("%w: node %d records black height %d, measured %d",
			ErrInvariantViolated, t.key, t.blackHeight, bh)
	}
	return bh, nil
}
