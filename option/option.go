// Package option provides Option, a container for a value that may be absent.
//
// An Option is either Some(value) or None. The zero value is None, so every
// Option holds exactly one of the two variants. Options are immutable and
// safe to share between goroutines.
package option

import "fmt"

// Tag identifies the variant held by an Option.
type Tag string

const (
	TagSome Tag = "some"
	TagNone Tag = "none"
)

// Option represents an optional value that may or may not be present.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Tag returns TagSome or TagNone.
func (o Option[T]) Tag() Tag {
	if o.present {
		return TagSome
	}
	return TagNone
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the contained value. It panics with *UnwrapError if the
// Option is None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&UnwrapError{})
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
// fn is only called when the Option is None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// ToPtr converts Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether o holds a value.
func IsSome[T any](o Option[T]) bool { return o.IsSome() }

// IsNone reports whether o is empty.
func IsNone[T any](o Option[T]) bool { return o.IsNone() }

// Unwrap is the function form of Option.Unwrap.
func Unwrap[T any](o Option[T]) T { return o.Unwrap() }

// UnwrapOr is the function form of Option.UnwrapOr.
func UnwrapOr[T any](o Option[T], defaultValue T) T { return o.UnwrapOr(defaultValue) }

// UnwrapOrElse is the function form of Option.UnwrapOrElse.
func UnwrapOrElse[T any](o Option[T], fn func() T) T { return o.UnwrapOrElse(fn) }
