package sequence

import (
	"math"

	"github.com/cockroachdb/errors"
)

// NoLimit leaves the number of splits unbounded.
const NoLimit = math.MaxInt

// Split traverses s once and cuts it into segments around elements matching
// isSep. Separator elements are not part of any segment.
//
// A segment closed by a separator is dropped when it is empty and omitEmpty
// is set; dropped segments do not count toward maxSplits. Once maxSplits
// segments have been emitted the predicate is no longer applied and the
// remainder drains into one trailing segment, which still passes through the
// same empty-omission rule. maxSplits == 0 therefore materializes the whole
// source as a single segment without ever invoking the predicate.
//
// A predicate error aborts the call and no segments are returned.
func Split[V any](s Sequence[V], maxSplits int, omitEmpty bool, isSep func(V) (bool, error)) ([][]V, error) {
	if maxSplits < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "Split(maxSplits: %d)", maxSplits)
	}

	cur := s.Cursor()
	var segments [][]V
	pending := []V{}

	for {
		if len(segments) == maxSplits {
			for v, ok := cur.Move(); ok; v, ok = cur.Move() {
				pending = append(pending, v)
			}
			break
		}

		v, ok := cur.Move()
		if !ok {
			break
		}

		sep, err := isSep(v)
		if err != nil {
			return nil, err
		}
		if !sep {
			pending = append(pending, v)
			continue
		}

		if len(pending) > 0 || !omitEmpty {
			segments = append(segments, pending)
		}
		pending = []V{}
	}

	if len(pending) > 0 || !omitEmpty {
		segments = append(segments, pending)
	}
	return segments, nil
}

// SplitOn cuts s around elements equal to sep, omitting empty segments and
// with no limit on the number of splits.
func SplitOn[V comparable](s Sequence[V], sep V) ([][]V, error) {
	return Split(s, NoLimit, true, func(v V) (bool, error) {
		return v == sep, nil
	})
}
