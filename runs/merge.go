package runs

// Merged is a K-way merge of attribute run sequences into one combined run
// sequence. Change-points of the merged sequence are exactly the sorted
// union of the input change-points. At every change-point the merger folds
// the values of all inputs changing there into an accumulator, starting from
// the base accumulator and applying inputs in the order they were handed to
// Merge.
//
// The base accumulator is handed to fold unchanged on every step. Value-type
// accumulators therefore reflect only the inputs changing at the emitted
// offset; clients which want the combined state of all attribute layers pass
// a pointer as accumulator and let fold update it field by field, so state
// carries over from one change-point to the next.
//
// K is the number of attribute layers and small (typically 10–20), so the
// merger scans the live inputs linearly instead of maintaining a heap.
type Merged[A, Acc any] struct {
	entries       []mergeEntry[A]
	remaining     int // live prefix length of entries
	fold          func(Acc, A) Acc
	base          Acc
	cur           Run[Acc]
	started       bool
	syntheticZero bool // emit (0, base) before the first real change-point
	done          bool
}

type mergeEntry[A any] struct {
	it   Iterator[A]
	head Run[A]
	ord  int // position in the caller's priority order
}

// Merge combines the given run iterators into one merged run sequence.
// Nil iterator slots are permitted and contribute nothing. fold must be
// associative in the accumulator; it is applied in slice order for inputs
// sharing a change-point. The merged sequence always starts at offset 0:
// if no input has a run starting at 0, a synthetic run (0, base) is emitted
// first.
func Merge[A, Acc any](iterators []Iterator[A], fold func(Acc, A) Acc, base Acc) *Merged[A, Acc] {
	assert(fold != nil, "runs: merge requires a fold function")
	m := &Merged[A, Acc]{
		entries: make([]mergeEntry[A], 0, len(iterators)),
		fold:    fold,
		base:    base,
	}
	for i, it := range iterators {
		if it == nil || !it.Next() {
			continue
		}
		m.entries = append(m.entries, mergeEntry[A]{it: it, head: it.Run(), ord: i})
	}
	m.remaining = len(m.entries)
	m.syntheticZero = m.minHeadStart() != 0
	return m
}

// minHeadStart returns the minimal head offset of the live prefix, or -1
// when no live input remains (forcing the synthetic zero-run for empty
// merges).
func (m *Merged[A, Acc]) minHeadStart() int64 {
	if m.remaining == 0 {
		return -1
	}
	min := m.entries[0].head.Start
	for _, e := range m.entries[1:m.remaining] {
		if e.head.Start < min {
			min = e.head.Start
		}
	}
	return min
}

func (m *Merged[A, Acc]) Next() bool {
	if m.done {
		return false
	}
	m.started = true
	if m.syntheticZero {
		m.syntheticZero = false
		m.cur = Run[Acc]{Start: 0, Value: m.base}
		return true
	}
	if m.remaining == 0 {
		m.done = true
		return false
	}
	point := m.minHeadStart()

	// Partition every live input whose head starts at point to the front of
	// the live prefix. Swapping keeps this O(K) without shifting.
	front := 0
	for i := 0; i < m.remaining; i++ {
		if m.entries[i].head.Start == point {
			m.entries[front], m.entries[i] = m.entries[i], m.entries[front]
			front++
		}
	}
	// Restore priority order inside the front partition; the swaps above
	// scramble it and fold order must be deterministic.
	for i := 1; i < front; i++ {
		for j := i; j > 0 && m.entries[j-1].ord > m.entries[j].ord; j-- {
			m.entries[j-1], m.entries[j] = m.entries[j], m.entries[j-1]
		}
	}

	acc := m.base
	for i := 0; i < front; i++ {
		acc = m.fold(acc, m.entries[i].head.Value)
	}

	// Advance the folded inputs; evict exhausted ones via swap-with-last.
	// Walking backwards keeps indices stable under eviction swaps.
	for i := front - 1; i >= 0; i-- {
		if m.entries[i].it.Next() {
			m.entries[i].head = m.entries[i].it.Run()
			continue
		}
		m.entries[i] = m.entries[m.remaining-1]
		m.remaining--
	}

	m.cur = Run[Acc]{Start: point, Value: acc}
	return true
}

func (m *Merged[A, Acc]) Run() Run[Acc] {
	assert(m.started, "runs: Run read before first Next on merged sequence")
	return m.cur
}
