package sequence

// BaseSequence adapts a cursor-builder closure into a Sequence. It doubles
// as the type-erased wrapper: Erase hides any Sequence implementation behind
// a pair of closures.
type BaseSequence[V any] struct {
	builder func() Cursor[V]
	count   func() int
}

func SequenceFrom[V any](builder func() Cursor[V]) Sequence[V] {
	return &BaseSequence[V]{
		builder: builder,
	}
}

// Erase wraps s in a BaseSequence, hiding its concrete type. The erased
// sequence keeps the count estimate but drops the optional capability hooks.
func Erase[V any](s Sequence[V]) Sequence[V] {
	return &BaseSequence[V]{
		builder: s.Cursor,
		count:   s.UnderestimatedCount,
	}
}

func (s *BaseSequence[V]) Cursor() Cursor[V] {
	return s.builder()
}

func (s *BaseSequence[V]) UnderestimatedCount() int {
	if s.count == nil {
		return 0
	}
	return s.count()
}
