package result

import (
	"fmt"
	"reflect"
)

// Of is an outcome that carries a value of type T when it succeeds.
type Of[T any] struct {
	outcome Result
	value   T
}

// SuccessOf wraps value in a successful outcome. It panics with ErrNilValue when
// value is absent (a nil pointer, map, slice, channel, function or interface).
func SuccessOf[T any](value T, opts ...Option) Of[T] {
	r, err := FromValue(value)
	if err != nil {
		panic(err)
	}
	r.outcome = Success(opts...)
	return r
}

// FromValue converts a bare value into a successful outcome, returning
// ErrNilValue instead of panicking when the value is absent.
func FromValue[T any](value T) (Of[T], error) {
	if isNil(value) {
		return Of[T]{}, fmt.Errorf("%w: %T", ErrNilValue, value)
	}
	return Of[T]{outcome: Success(), value: value}, nil
}

// FailureOf is the typed counterpart of Failure.
func FailureOf[T any](message string, opts ...Option) Of[T] {
	return Of[T]{outcome: Failure(message, opts...)}
}

// ValidationFailureOf is the typed counterpart of ValidationFailure.
func ValidationFailureOf[T any](fields map[string][]string, opts ...Option) Of[T] {
	return Of[T]{outcome: ValidationFailure(fields, opts...)}
}

// SecurityFailureOf is the typed counterpart of SecurityFailure.
func SecurityFailureOf[T any](message string, opts ...Option) Of[T] {
	return Of[T]{outcome: SecurityFailure(message, opts...)}
}

// CanceledFailureOf is the typed counterpart of CanceledFailure.
func CanceledFailureOf[T any](message string, opts ...Option) Of[T] {
	return Of[T]{outcome: CanceledFailure(message, opts...)}
}

// NotFoundOf is the typed counterpart of NotFound.
func NotFoundOf[T any](message ...string) Of[T] {
	return Of[T]{outcome: NotFound(message...)}
}

// ServerErrorOf is the typed counterpart of ServerError.
func ServerErrorOf[T any](message ...string) Of[T] {
	return Of[T]{outcome: ServerError(message...)}
}

// FromErrorOf classifies a non-nil err like FromError. A nil err is not a valid
// input since there is no value to wrap; it panics with ErrInvalidState.
func FromErrorOf[T any](err error) Of[T] {
	if err == nil {
		panic(fmt.Errorf("%w: FromErrorOf called with nil error", ErrInvalidState))
	}
	return Of[T]{outcome: FromError(err)}
}

// FailedOf converts a failed non-generic outcome into a typed one. It panics
// with ErrInvalidState when r is a success.
func FailedOf[T any](r Result) Of[T] {
	if r.IsSuccess() {
		panic(fmt.Errorf("%w: FailedOf called with a success", ErrInvalidState))
	}
	return Of[T]{outcome: r}
}

func (r Of[T]) IsSuccess() bool { return r.outcome.IsSuccess() }

func (r Of[T]) IsFailure() bool { return r.outcome.IsFailure() }

func (r Of[T]) ResultType() ResultType { return r.outcome.ResultType() }

func (r Of[T]) FailureType() FailureType { return r.outcome.FailureType() }

func (r Of[T]) ErrorMessage() string { return r.outcome.ErrorMessage() }

func (r Of[T]) Failures() map[string][]string { return r.outcome.Failures() }

func (r Of[T]) Err() error { return r.outcome.Err() }

func (r Of[T]) Bool() bool { return r.outcome.IsSuccess() }

func (r Of[T]) String() string { return r.outcome.String() }

// Result drops the value and returns the non-generic outcome with the same
// result type, failure type, message and field errors.
func (r Of[T]) Result() Result { return r.outcome }

// Value returns the wrapped value, or ErrInvalidState when the outcome failed.
func (r Of[T]) Value() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, fmt.Errorf("%w: cannot take value of %s outcome: %s",
			ErrInvalidState, r.FailureType(), r.ErrorMessage())
	}
	return r.value, nil
}

// MustValue is like Value but panics on failure.
func (r Of[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// TryGetValue returns the value and true on success, the zero value and false
// otherwise.
func (r Of[T]) TryGetValue() (T, bool) {
	if r.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// DerefOf is the typed counterpart of Deref.
func DerefOf[T any](r *Of[T]) Of[T] {
	if r == nil {
		return FailureOf[T](nilResultMessage)
	}
	return *r
}

// TruthyOf is the typed counterpart of Truthy.
func TruthyOf[T any](r *Of[T]) bool {
	return r != nil && r.IsSuccess()
}

// Map applies fn to the value of a successful outcome, keeping its ResultType.
// Failures pass through unchanged. It panics with ErrNilValue when fn returns
// an absent value, like SuccessOf.
func Map[T, U any](r Of[T], fn func(T) U) Of[U] {
	if r.IsFailure() {
		return Of[U]{outcome: r.outcome}
	}
	out, err := FromValue(fn(r.value))
	if err != nil {
		panic(err)
	}
	out.outcome = r.outcome
	return out
}

// Then chains an operation that itself produces an outcome.
func Then[T, U any](r Of[T], fn func(T) Of[U]) Of[U] {
	if r.IsFailure() {
		return Of[U]{outcome: r.outcome}
	}
	return fn(r.value)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
