package sequence

// Any reports whether any element of s satisfies pred. Traversal stops at
// the first match.
func Any[V any](s Sequence[V], pred func(V) bool) bool {
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether all elements of s satisfy pred.
func Every[V any](s Sequence[V], pred func(V) bool) bool {
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ContainsFunc reports whether s has an element satisfying eq, by linear
// scan.
func ContainsFunc[V any](s Sequence[V], eq func(V) bool) bool {
	return Any(s, eq)
}

// Contains reports whether s has an element equal to target. Sequences with
// a faster-than-linear membership check answer without a traversal.
func Contains[V comparable](s Sequence[V], target V) bool {
	if ec, ok := s.(EquatableContainer[V]); ok {
		if found, answered := ec.ContainsEquatable(target); answered {
			return found
		}
	}
	return ContainsFunc(s, func(v V) bool { return v == target })
}
