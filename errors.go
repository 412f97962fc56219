package airfoil

import "github.com/pkg/errors"

// Errors returned by this package wrap one of these sentinels. Use errors.Is
// to classify them; the wrapping message carries the details.
var (
	// ErrInvalidArgument reports a parameter outside its domain, such as a
	// blend factor outside [0, 1] or a resample count below 2.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShapeMismatch reports morph operands whose surfaces have different
	// point counts.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrMalformedInput reports geometry that cannot be operated on: too few
	// points, non-finite coordinates, zero length, or a missing leading edge.
	ErrMalformedInput = errors.New("malformed input")
)
