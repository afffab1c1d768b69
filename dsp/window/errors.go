package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned for a window type or name outside the catalog.
	ErrUnknownType = errors.New("unknown window type")
	// ErrSymmetryRequired is returned when a family without a default symmetry
	// is generated without WithSymmetric or WithPeriodic.
	ErrSymmetryRequired = errors.New("window symmetry must be given explicitly")

	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func unknownType(t Type) error {
	return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
}

func unknownName(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func symmetryRequired(t Type) error {
	return fmt.Errorf("%w: %s", ErrSymmetryRequired, t)
}
