package runs

// defaulted prepends a synthetic run carrying a default value whenever the
// underlying sequence does not start at offset 0. This lets an attribute
// layer behave as if it always has a value, so clients never have to treat
// "no run yet" as a special case.
//
// The wrapper is a small state machine:
//
//	initial --> defaultValueAndEnd   (base absent or empty)
//	initial --> defaultValue         (base starts after 0)
//	initial --> baseRun              (base starts at 0)
//
// with defaultValue moving to baseRun after the synthetic run was consumed.
// While in the defaultValue state the first base run has already been pulled
// and is served on the transition to baseRun.
type defaulted[V any] struct {
	base  Iterator[V]
	def   V
	state defaultState
}

type defaultState int8

const (
	stateInitial defaultState = iota
	stateDefaultValueAndEnd
	stateDefaultValue
	stateBaseRun
	stateDone
)

// WithDefault wraps it so that the resulting sequence always starts with a
// run at offset 0. If the first run of it starts later (or it is nil or
// empty), a run (0, def) is emitted first. Otherwise the sequence is passed
// through unchanged.
func WithDefault[V any](it Iterator[V], def V) Iterator[V] {
	return &defaulted[V]{base: it, def: def}
}

func (d *defaulted[V]) Next() bool {
	switch d.state {
	case stateInitial:
		if d.base == nil || !d.base.Next() {
			d.state = stateDefaultValueAndEnd
			return true
		}
		if d.base.Run().Start > 0 {
			d.state = stateDefaultValue
			return true
		}
		d.state = stateBaseRun
		return true
	case stateDefaultValueAndEnd:
		d.state = stateDone
		return false
	case stateDefaultValue:
		// the first base run has been pulled already; just switch over
		d.state = stateBaseRun
		return true
	case stateBaseRun:
		if d.base.Next() {
			return true
		}
		d.state = stateDone
		return false
	}
	return false
}

func (d *defaulted[V]) Run() Run[V] {
	switch d.state {
	case stateDefaultValueAndEnd, stateDefaultValue:
		return Run[V]{Start: 0, Value: d.def}
	case stateBaseRun:
		return d.base.Run()
	}
	assert(false, "runs: Run read on defaulted iterator outside of iteration")
	return Run[V]{}
}
