package dynarray

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrInvalidArgument indicates a constructor argument outside its valid range.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrIndexOutOfRange indicates an index outside the operation's valid range.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
)

// IndexError wraps ErrIndexOutOfRange with the failing call's context.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range (size %d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
