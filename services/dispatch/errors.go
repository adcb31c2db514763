package dispatch

import "errors"

// Error taxonomy for the dispatch engine. Anything not matched by errors.Is
// against these sentinels is a storage fault and safe to retry; "no cab
// available" is not an error at all but a normal trip response with no
// assigned cab.
var (
	// ErrInvalidInput marks bad or missing request data, rejected before any
	// transaction opens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a trip or cab that does not exist or is not owned by
	// the caller. Ownership failures are deliberately indistinguishable from
	// missing rows.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an operation that is illegal for the current
	// trip status, e.g. completing a trip that was never assigned.
	ErrInvalidState = errors.New("invalid trip state")

	// ErrCabConflict marks a lost race for a cab: another request took it
	// between candidate selection and commit. The whole call can be retried.
	ErrCabConflict = errors.New("cab already taken")
)
