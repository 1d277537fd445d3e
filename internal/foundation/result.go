// Package foundation provides small generic building blocks (Result, Option)
// used to make fallible lookups and provider chains explicit instead of
// exception-shaped.
package foundation

import "fmt"

// Result represents an operation that either succeeded with a value T or
// failed with an error E. The content provider chain returns Results so that
// "this provider was unavailable" is an ordinary value, not control flow.
type Result[T any, E error] struct {
	value T
	err   E
	isOk  bool
}

// Ok creates a successful Result.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{value: value, isOk: true}
}

// Err creates a failed Result.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err, isOk: false}
}

// IsOk reports whether the Result holds a value.
func (r Result[T, E]) IsOk() bool { return r.isOk }

// IsErr reports whether the Result holds an error.
func (r Result[T, E]) IsErr() bool { return !r.isOk }

// Unwrap returns the value and panics on an Err result.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(fmt.Sprintf("called Unwrap on Err result: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the value if Ok, otherwise fallback.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapErr returns the error and panics on an Ok result.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic("called UnwrapErr on Ok result")
	}
	return r.err
}

// Match invokes onOk or onErr depending on the Result state.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isOk {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// ToTuple converts the Result to the conventional (value, error) pair.
func (r Result[T, E]) ToTuple() (T, E) {
	if r.isOk {
		var zero E
		return r.value, zero
	}
	var zero T
	return zero, r.err
}

// Map transforms an Ok Result's value, passing an Err through unchanged.
func Map[T, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}
