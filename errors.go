package bitrange

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange reports an operand that fails the valid predicate,
	// such as an explicitly constructed interval with upper < lower.
	ErrInvalidRange = errors.New("bitrange: invalid range operand")

	// ErrNonComparable reports operands of different dimension.
	ErrNonComparable = errors.New("bitrange: dimension mismatch")

	// ErrNonOperable reports an interval or box operation whose result
	// cannot be expressed in a single piece. The RangeMap forms of the
	// same operations always succeed.
	ErrNonOperable = errors.New("bitrange: result needs more than one piece")

	// ErrParse reports malformed textual range syntax.
	ErrParse = errors.New("bitrange: malformed range syntax")
)
