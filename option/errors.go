package option

import "errors"

// ErrNone is matched by errors.Is against the panic value of Unwrap on None.
var ErrNone = errors.New("option is None")

// UnwrapError is the panic value raised when Unwrap is called on None.
// It signals a caller bug: the Option was not checked before unwrapping.
type UnwrapError struct{}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return "tried to unwrap a None value"
}

// Unwrap returns ErrNone for errors.Is/As.
func (e *UnwrapError) Unwrap() error {
	return ErrNone
}
