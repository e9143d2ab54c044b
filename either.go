package attribs

// Either holds exactly one of two alternative payload types, tagged at
// runtime. There is no third state: the zero value of Either is a Left
// holding L's zero value.
//
// Several attributes are naturally "one of two alternatives", e.g. a plain
// color versus an opaque paint object.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates an Either holding the left alternative.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding the right alternative.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsRight reports whether the right alternative is held.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left alternative and whether it is the one held.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right alternative and whether it is the one held.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Switch calls exactly one of onLeft or onRight, depending on the
// alternative held. Nil callbacks are permitted and skip the call.
func (e Either[L, R]) Switch(onLeft func(L), onRight func(R)) {
	if e.isRight {
		if onRight != nil {
			onRight(e.right)
		}
		return
	}
	if onLeft != nil {
		onLeft(e.left)
	}
}
