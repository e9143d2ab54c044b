package runs

import "iter"

// Run is a single run of constant attribute value. The run extends from
// Start (inclusive) to the start offset of the successor run (exclusive);
// the last run of a sequence extends indefinitely.
type Run[V any] struct {
	Start int64
	Value V
}

// Iterator is a pull-style iterator over an ascending run sequence.
//
// Iterators are one-shot and forward-only. A freshly created iterator is
// positioned before the first run; clients must call Next once before
// reading Run. Reading Run before the first Next or after Next returned
// false is a programmer error.
type Iterator[V any] interface {
	Next() bool
	Run() Run[V]
}

// sliceIterator iterates over a pre-built run slice.
type sliceIterator[V any] struct {
	runs []Run[V]
	inx  int
}

// FromSlice returns an iterator over a slice of runs, which must be in
// ascending Start order.
func FromSlice[V any](rs []Run[V]) Iterator[V] {
	return &sliceIterator[V]{runs: rs}
}

func (it *sliceIterator[V]) Next() bool {
	if it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

func (it *sliceIterator[V]) Run() Run[V] {
	assert(it.inx > 0, "runs: Run read before first Next")
	return it.runs[it.inx-1]
}

// Collect drains an iterator into a slice. Mainly useful for tests and for
// clients which need random access to a run sequence.
func Collect[V any](it Iterator[V]) []Run[V] {
	var rs []Run[V]
	for it.Next() {
		rs = append(rs, it.Run())
	}
	return rs
}

// All adapts a pull-iterator to a range-over-func sequence.
func All[V any](it Iterator[V]) iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		for it.Next() {
			r := it.Run()
			if !yield(r.Start, r.Value) {
				return
			}
		}
	}
}

// --- Iterator composition ----------------------------------------------------

type mapIterator[A, B any] struct {
	base Iterator[A]
	f    func(A) B
}

// Map transforms the values of a run sequence, keeping offsets.
func Map[A, B any](it Iterator[A], f func(A) B) Iterator[B] {
	return &mapIterator[A, B]{base: it, f: f}
}

func (it *mapIterator[A, B]) Next() bool {
	return it.base.Next()
}

func (it *mapIterator[A, B]) Run() Run[B] {
	r := it.base.Run()
	return Run[B]{Start: r.Start, Value: it.f(r.Value)}
}

type filterIterator[V any] struct {
	base Iterator[V]
	pred func(Run[V]) bool
}

// Filter drops runs not matching pred. Dropping a run extends its
// predecessor, i.e. the filtered sequence still covers the same offsets.
func Filter[V any](it Iterator[V], pred func(Run[V]) bool) Iterator[V] {
	return &filterIterator[V]{base: it, pred: pred}
}

func (it *filterIterator[V]) Next() bool {
	for it.base.Next() {
		if it.pred(it.base.Run()) {
			return true
		}
	}
	return false
}

func (it *filterIterator[V]) Run() Run[V] {
	return it.base.Run()
}
