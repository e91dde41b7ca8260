package blinding

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by input validation and the root finder.
var (
	ErrNegativeCount   = errors.New("count must be non-negative")
	ErrEmptyArm        = errors.New("arm has no subjects")
	ErrParamOutOfRange = errors.New("parameter outside [0, 1]")
	ErrNoRoot          = errors.New("no sign change in root bracket")
	ErrNonFiniteCount  = errors.New("count must be finite")
)

// invalidInput wraps a sentinel with the offending argument name and value.
func invalidInput(sentinel error, arg string, value float64) error {
	return fmt.Errorf("%s = %v: %w", arg, value, sentinel)
}
