package accum

import (
	"errors"
	"fmt"
)

// All precondition failures match ErrOutOfRange with errors.Is.
var (
	ErrOutOfRange = errors.New("accum: out of range")

	ErrEmpty        = fmt.Errorf("%w: accumulator is empty", ErrOutOfRange)
	ErrZeroLength   = fmt.Errorf("%w: zero length request", ErrOutOfRange)
	ErrInsufficient = fmt.Errorf("%w: insufficient data", ErrOutOfRange)
	ErrIndex        = fmt.Errorf("%w: index out of range", ErrOutOfRange)
)
