package sequence

import "github.com/cockroachdb/errors"

// SkipLast streams s through a circular buffer of capacity n and returns
// every element except the final n, in original order. Auxiliary memory is
// O(n), not O(length). The source must be finite; SkipLast on an unbounded
// source never returns.
func SkipLast[V any](s Sequence[V], n int) ([]V, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "SkipLast(%d)", n)
	}

	cur := s.Cursor()
	out := make([]V, 0, maxInt(0, s.UnderestimatedCount()-n))
	if n == 0 {
		for v, ok := cur.Move(); ok; v, ok = cur.Move() {
			out = append(out, v)
		}
		return out, nil
	}

	ring := newRingBuffer[V](n)
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		if oldest, full := ring.push(v); full {
			out = append(out, oldest)
		}
	}
	return out, nil
}

// TakeLast returns the final n elements of s in original order, or all
// elements when s has fewer than n. The source must be finite.
func TakeLast[V any](s Sequence[V], n int) ([]V, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "TakeLast(%d)", n)
	}
	if n == 0 {
		return []V{}, nil
	}

	ring := newRingBuffer[V](n)
	cur := s.Cursor()
	for v, ok := cur.Move(); ok; v, ok = cur.Move() {
		ring.push(v)
	}
	return ring.collect(), nil
}
