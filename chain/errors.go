package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("chain: index out of bounds")
	// ErrLinkage signals a corrupted node linkage detected by Check.
	ErrLinkage = errors.New("chain: corrupted linkage")
)

// BoundsError carries the offending index together with the chain length at
// the time of the call. It matches ErrIndexOutOfBounds under errors.Is.
type BoundsError struct {
	Index int
	Len   int
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("chain: index %d out of bounds for length %d", e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfBounds) succeed for bounds errors.
func (e BoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

func boundsError(index, length int) error {
	return BoundsError{Index: index, Len: length}
}
