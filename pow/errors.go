package pow

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrInvalidTarget       = errors.New("invalid target")
	ErrUnknownAlgorithm    = errors.New("unknown hash algorithm")
	ErrUnknownEncoding     = errors.New("unknown nonce encoding")
	ErrEncodingMismatch    = errors.New("nonce cannot be represented by the nonce encoding")
	ErrSearchCanceled      = errors.New("solution search canceled")
	ErrNonceSpaceExhausted = errors.New("nonce space exhausted without a solution")
)

// CanceledError is returned by FindSolution when its context ends first.
// It matches both ErrSearchCanceled and the context's error.
type CanceledError struct {
	Attempts uint64
	Elapsed  time.Duration
	Cause    error
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("%v after %d attempts: %v", ErrSearchCanceled, e.Attempts, e.Cause)
}

func (e *CanceledError) Unwrap() []error {
	return []error{ErrSearchCanceled, e.Cause}
}
