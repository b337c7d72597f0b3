package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when the input matrix has fewer than
	// two rows or fewer than two columns
	ErrInsufficientData = errors.New("insufficient observations")

	// ErrZeroVariance is returned when a column has no sample variance,
	// which makes standardization undefined
	ErrZeroVariance = errors.New("zero variance column")

	// ErrRaggedRows is returned when input rows have differing lengths
	ErrRaggedRows = errors.New("ragged input rows")

	// ErrShapeMismatch is returned when a matrix does not have the shape
	// the decomposition was computed from
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEigenFailure is returned when the eigensolver does not converge
	ErrEigenFailure = errors.New("eigendecomposition failed")

	// ErrComponentRange is returned when a requested component count is
	// outside [1, cols]
	ErrComponentRange = errors.New("component count out of range")
)

// Error represents a PCA failure with context
type Error struct {
	Op     string // Operation that failed
	Err    error  // Underlying error
	Detail string // Additional context
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error, detail string) error {
	return &Error{
		Op:     op,
		Err:    err,
		Detail: detail,
	}
}

// IsInvalidInput checks if an error was caused by a malformed or
// degenerate input matrix
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrZeroVariance) ||
		errors.Is(err, ErrRaggedRows) ||
		errors.Is(err, ErrShapeMismatch)
}

// IsDecompositionFailure checks if an error came from the eigensolver
func IsDecompositionFailure(err error) bool {
	return errors.Is(err, ErrEigenFailure)
}

// IsComponentRange checks if an error is an out-of-range component count
func IsComponentRange(err error) bool {
	return errors.Is(err, ErrComponentRange)
}
