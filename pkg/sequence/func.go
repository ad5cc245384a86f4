package sequence

// Map traverses s once and returns the transformed elements in traversal
// order. The result is pre-sized from the count estimate. The first
// transform error aborts the call; no partial result is returned.
func Map[T, U any](s Sequence[T], transform func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, s.UnderestimatedCount())
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		u, err := transform(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Filter traverses s once and returns the elements satisfying pred in
// traversal order. The first predicate error aborts the call.
func Filter[V any](s Sequence[V], pred func(V) (bool, error)) ([]V, error) {
	out := make([]V, 0, s.UnderestimatedCount())
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		keep, err := pred(v)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, v)
		}
	}
	return out, nil
}

// ForEach invokes body once per element in traversal order. There is no way
// to stop early other than returning an error, which propagates to the
// caller immediately.
func ForEach[V any](s Sequence[V], body func(V) error) error {
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		if err := body(v); err != nil {
			return err
		}
	}
	return nil
}

// ToSlice materializes s. Sequences with contiguous backing storage are
// copied in one step; everything else is drained sequentially into a buffer
// pre-sized from the count estimate.
func ToSlice[V any](s Sequence[V]) []V {
	if cs, ok := s.(ContiguousStorage[V]); ok {
		var out []V
		if cs.WithContiguousStorage(func(storage []V) {
			out = make([]V, len(storage))
			copy(out, storage)
		}) {
			return out
		}
	}

	out := make([]V, 0, s.UnderestimatedCount())
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		out = append(out, v)
	}
	return out
}
