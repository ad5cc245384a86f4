package sequence

import "github.com/cockroachdb/errors"

// ErrNegativeCount is returned when a count argument (Skip, Take, SkipLast,
// TakeLast, Split) is negative. It is reported before any traversal happens.
var ErrNegativeCount = errors.New("count must not be negative")
