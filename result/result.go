// Package result provides Result, the outcome of a computation that may fail.
//
// A Result[T, E] is either Ok(value T) or Err(error E). T and E are
// independent: E does not have to implement the error interface. The zero
// value is Err holding the zero E, so every Result holds exactly one of the
// two variants.
//
// Unwrap and UnwrapErr are escape hatches for call sites that already know
// which variant they hold. On the wrong variant they panic with a
// *VariantError carrying the other variant's payload unchanged; use Recover
// to get that payload back.
package result

import "fmt"

// Tag identifies the variant held by a Result.
type Tag string

const (
	TagOk  Tag = "ok"
	TagErr Tag = "err"
)

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// From converts a Go (value, error) pair into a Result. A nil err yields Ok.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// Tag returns TagOk or TagErr.
func (r Result[T, E]) Tag() Tag {
	if r.ok {
		return TagOk
	}
	return TagErr
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the error value and true, or the zero E and false.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value. On Err it panics with a *VariantError
// whose Payload is the error value.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&VariantError{Called: "Unwrap", Held: TagErr, Payload: r.err})
	}
	return r.value
}

// UnwrapErr returns the error value. On Ok it panics with a *VariantError
// whose Payload is the success value.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&VariantError{Called: "UnwrapErr", Held: TagOk, Payload: r.value})
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes a default.
// fn is only called when the Result is Err.
func (r Result[T, E]) UnwrapOrElse(fn func() T) T {
	if r.ok {
		return r.value
	}
	return fn()
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to the success value. An Err is passed through with its
// error value untouched and fn is not called.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies fn to the error value. An Ok is passed through untouched
// and fn is not called.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.ok {
		return Err[T](fn(r.err))
	}
	return Ok[T, F](r.value)
}

// IsOk reports whether r is Ok.
func IsOk[T, E any](r Result[T, E]) bool { return r.IsOk() }

// IsErr reports whether r is Err.
func IsErr[T, E any](r Result[T, E]) bool { return r.IsErr() }

// Unwrap is the function form of Result.Unwrap.
func Unwrap[T, E any](r Result[T, E]) T { return r.Unwrap() }

// UnwrapErr is the function form of Result.UnwrapErr.
func UnwrapErr[T, E any](r Result[T, E]) E { return r.UnwrapErr() }

// UnwrapOr is the function form of Result.UnwrapOr.
func UnwrapOr[T, E any](r Result[T, E], defaultValue T) T { return r.UnwrapOr(defaultValue) }

// UnwrapOrElse is the function form of Result.UnwrapOrElse.
func UnwrapOrElse[T, E any](r Result[T, E], fn func() T) T { return r.UnwrapOrElse(fn) }
