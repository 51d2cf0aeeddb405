package estimate

import (
	"errors"
	"fmt"
)

// ErrDomain is returned when an estimator is called with a key count
// outside its domain. Use errors.Is to match it against a DomainError.
var ErrDomain = errors.New("key count must be positive")

// DomainError records which estimator rejected which key count.
// It implements the error and Unwrap interfaces.
type DomainError struct {
	Op string // Estimator that failed
	N  int64  // Rejected key count
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: n=%d: %v", e.Op, e.N, ErrDomain)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// checkDomain returns a DomainError for op if n is not a positive key count.
func checkDomain(op string, n int64) error {
	if n <= 0 {
		return &DomainError{Op: op, N: n}
	}
	return nil
}
