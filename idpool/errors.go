package idpool

import "errors"

var (
	// ErrExhausted indicates that no free IDs remain in the pool.
	// It is an expected, recoverable condition: returning any borrowed ID
	// makes the pool borrowable again.
	ErrExhausted = errors.New("idpool: no free IDs left")
	// ErrBelowStart indicates a returned ID below the pool's configured minimum.
	ErrBelowStart = errors.New("idpool: ID is below pool minimum")
	// ErrDoubleReturn indicates a returned ID that is already free,
	// i.e. it was never borrowed or has already been returned.
	ErrDoubleReturn = errors.New("idpool: ID is not currently borrowed")
)
