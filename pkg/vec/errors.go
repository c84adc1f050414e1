package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports an index outside [0, Len()).
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrEmptyVector reports Head, Last, Tail or Init on an empty vector.
	ErrEmptyVector = errors.New("vec: empty vector")

	// ErrIteratorExhausted reports Next on an exhausted iterator.
	ErrIteratorExhausted = errors.New("vec: iterator exhausted")
)

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, index, length)
}
