// Package result holds the Success/Failure union returned by every data
// source and repository read.
package result

// Result is either a success value or a *Failure, never both.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps f. A nil f is turned into an exception so the union stays
// well formed.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = &Failure{Kind: KindException, Message: "nil failure"}
	}
	return Result[T]{failure: f}
}

// FromError builds a Result from the usual (value, error) pair.
func FromError[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](AsFailure(err))
	}
	return Success(v)
}

func (r Result[T]) IsSuccess() bool { return r.failure == nil }
func (r Result[T]) IsFail() bool    { return r.failure != nil }

// Value returns the success value and whether there was one.
func (r Result[T]) Value() (T, bool) {
	if r.failure != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the failure and whether there was one.
func (r Result[T]) Failure() (*Failure, bool) {
	return r.failure, r.failure != nil
}

// Unwrap converts back to the (value, error) convention.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}

// OrDefault returns the success value or def.
func (r Result[T]) OrDefault(def T) T {
	if r.failure != nil {
		return def
	}
	return r.value
}

// Map transforms the success value, passing failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.failure != nil {
		return Result[U]{failure: r.failure}
	}
	return Success(fn(r.value))
}
