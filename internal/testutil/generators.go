// Package testutil provides rapid generators for Option and Result values.
package testutil

import (
	"errors"

	"github.com/authcorp/libs/go/functional/option"
	"github.com/authcorp/libs/go/functional/result"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// ResultGen generates Result[T, E] values.
func ResultGen[T, E any](valueGen *rapid.Generator[T], errGen *rapid.Generator[E]) *rapid.Generator[result.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) result.Result[T, E] {
		if rapid.Bool().Draw(t, "isOk") {
			return result.Ok[T, E](valueGen.Draw(t, "value"))
		}
		return result.Err[T](errGen.Draw(t, "error"))
	})
}

// OkGen generates Ok[T, E] values only.
func OkGen[T, E any](valueGen *rapid.Generator[T]) *rapid.Generator[result.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) result.Result[T, E] {
		return result.Ok[T, E](valueGen.Draw(t, "value"))
	})
}

// ErrGen generates Err[T, E] values only.
func ErrGen[T, E any](errGen *rapid.Generator[E]) *rapid.Generator[result.Result[T, E]] {
	return rapid.Custom(func(t *rapid.T) result.Result[T, E] {
		return result.Err[T](errGen.Draw(t, "error"))
	})
}

// ErrorGen generates error values.
func ErrorGen() *rapid.Generator[error] {
	return rapid.Custom(func(t *rapid.T) error {
		return errors.New(rapid.String().Draw(t, "errorMsg"))
	})
}

// CatchPanic runs fn and returns the value it panicked with, or nil.
func CatchPanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
