package parser

import "errors"

var (
	// ErrTooFewFields means a line had fewer than three whitespace-separated
	// integers (pid, arrival, and at least one burst).
	ErrTooFewFields = errors.New("parser: line needs a pid, an arrival, and at least one burst")

	// ErrNotInteger means a field could not be parsed as a base-10 integer.
	ErrNotInteger = errors.New("parser: field is not an integer")

	// ErrNegativePID means pid < 0.
	ErrNegativePID = errors.New("parser: pid must be >= 0")

	// ErrNegativeArrival means arrival < 0.
	ErrNegativeArrival = errors.New("parser: arrival must be >= 0")

	// ErrZeroBurst means a burst field parsed to 0, which has no sign and so
	// cannot be classified as CPU or I/O.
	ErrZeroBurst = errors.New("parser: burst value must not be 0")

	// ErrDuplicateIdentity means two lines produced the same (pid, arrival)
	// pair. The original program removed queue entries by (pid, arrival)
	// and so only ever removed the first match (spec.md §9); the engine here
	// removes by pointer identity, and the parser rejects this case outright
	// rather than carrying the ambiguity forward.
	ErrDuplicateIdentity = errors.New("parser: duplicate (pid, arrival) identity")

	// ErrEmptyWorkload means the input contained no process lines at all.
	ErrEmptyWorkload = errors.New("parser: no process lines found")
)
