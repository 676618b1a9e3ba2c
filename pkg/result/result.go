package result

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Result is an immutable success-or-failure outcome without a value.
// The zero value is a plain success.
type Result struct {
	resultType  ResultType
	failureType FailureType
	message     string
	failures    map[string][]string
}

// Option customizes an outcome produced by one of the factories.
type Option func(*options)

type options struct {
	resultType  *ResultType
	failureType *FailureType
	message     string
}

// WithResultType overrides the default severity of the outcome.
func WithResultType(t ResultType) Option {
	return func(o *options) { o.resultType = &t }
}

// WithFailureType overrides the classification of a failure. It has no effect
// on successes.
func WithFailureType(t FailureType) Option {
	return func(o *options) { o.failureType = &t }
}

// WithMessage replaces the generated summary of a validation failure.
func WithMessage(msg string) Option {
	return func(o *options) { o.message = msg }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Success returns a successful outcome. The result type defaults to TypeSuccess.
func Success(opts ...Option) Result {
	o := applyOptions(opts)
	r := Result{resultType: TypeSuccess, failureType: FailureNone}
	if o.resultType != nil {
		r.resultType = *o.resultType
	}
	return r
}

// Failure returns a failed outcome classified as FailureError unless
// WithFailureType says otherwise. A validation failure must carry field errors,
// so requesting FailureValidation here panics; use ValidationFailure instead.
func Failure(message string, opts ...Option) Result {
	o := applyOptions(opts)
	ft := FailureError
	if o.failureType != nil {
		ft = *o.failureType
	}
	switch ft {
	case FailureNone:
		panic(fmt.Errorf("%w: failure with failure type None", ErrInvalidState))
	case FailureValidation:
		panic(fmt.Errorf("%w: validation failure requires field errors", ErrInvalidState))
	}
	return newFailure(ft, message, nil, o.resultType)
}

// ValidationFailure returns a FailureValidation outcome populated with the given
// field errors. Empty message lists are dropped; if nothing remains it panics.
func ValidationFailure(fields map[string][]string, opts ...Option) Result {
	o := applyOptions(opts)
	failures := cloneFailures(fields)
	if len(failures) == 0 {
		panic(fmt.Errorf("%w: validation failure requires field errors", ErrInvalidState))
	}
	msg := o.message
	if msg == "" {
		msg = Summarize(failures, nil)
	}
	return newFailure(FailureValidation, msg, failures, o.resultType)
}

// SecurityFailure returns a FailureSecurity outcome.
func SecurityFailure(message string, opts ...Option) Result {
	return Failure(message, append(opts, WithFailureType(FailureSecurity))...)
}

// CanceledFailure returns a FailureOperationCanceled outcome with TypeWarning severity.
func CanceledFailure(message string, opts ...Option) Result {
	return Failure(message, append(opts, WithFailureType(FailureOperationCanceled))...)
}

// NotFound returns a plain failure for a missing resource.
func NotFound(message ...string) Result {
	return Failure(firstOr(message, notFoundMessage))
}

// ServerError returns a plain failure for an unexpected server-side problem.
func ServerError(message ...string) Result {
	return Failure(firstOr(message, serverErrorMessage))
}

// FromError classifies err into an outcome. A nil error is a success.
// Context cancellation and deadline errors become FailureOperationCanceled,
// errors matching ErrSecurity become FailureSecurity, and a *OutcomeError keeps
// its own classification. Everything else is FailureError.
func FromError(err error) Result {
	if err == nil {
		return Success()
	}

	var fe *OutcomeError
	if errors.As(err, &fe) {
		if fe.Type == FailureValidation && len(fe.Fields) > 0 {
			return ValidationFailure(fe.Fields, WithMessage(fe.Message))
		}
		if fe.Type != FailureNone && fe.Type != FailureValidation {
			return newFailure(fe.Type, fe.Message, nil, nil)
		}
	}

	switch {
	case IsCancellation(err):
		return newFailure(FailureOperationCanceled, err.Error(), nil, nil)
	case errors.Is(err, ErrSecurity):
		return newFailure(FailureSecurity, err.Error(), nil, nil)
	default:
		return newFailure(FailureError, err.Error(), nil, nil)
	}
}

// IsCancellation reports whether err represents a cooperative cancellation.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrCanceled)
}

func newFailure(ft FailureType, message string, failures map[string][]string, rt *ResultType) Result {
	r := Result{
		resultType:  TypeError,
		failureType: ft,
		message:     message,
		failures:    failures,
	}
	if ft == FailureOperationCanceled {
		r.resultType = TypeWarning
	}
	if rt != nil {
		r.resultType = *rt
	}
	if r.message == "" {
		r.message = defaultMessage(ft)
	}
	return r
}

func defaultMessage(ft FailureType) string {
	switch ft {
	case FailureSecurity:
		return "Access denied"
	case FailureValidation:
		return validationMessage
	case FailureOperationCanceled:
		return "Operation was canceled"
	default:
		return "An error occurred"
	}
}

func (r Result) IsSuccess() bool { return r.failureType == FailureNone }

func (r Result) IsFailure() bool { return r.failureType != FailureNone }

func (r Result) ResultType() ResultType { return r.resultType }

func (r Result) FailureType() FailureType { return r.failureType }

// ErrorMessage returns the human-readable failure message, or "" on success.
func (r Result) ErrorMessage() string { return r.message }

// Failures returns a copy of the per-field error map. It is non-empty only for
// FailureValidation outcomes.
func (r Result) Failures() map[string][]string {
	return cloneFailures(r.failures)
}

// Bool reports whether the outcome is a success.
func (r Result) Bool() bool { return r.IsSuccess() }

// Err returns nil on success, otherwise a *OutcomeError describing the failure.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &OutcomeError{
		Type:    r.failureType,
		Message: r.message,
		Fields:  r.Failures(),
	}
}

func (r Result) String() string {
	if r.IsSuccess() {
		return r.resultType.String()
	}
	return r.failureType.String() + ": " + r.message
}

// Deref converts a possibly nil outcome reference into a value; nil becomes a
// FailureError outcome rather than a panic.
func Deref(r *Result) Result {
	if r == nil {
		return Failure(nilResultMessage)
	}
	return *r
}

// Truthy reports whether r is non-nil and successful.
func Truthy(r *Result) bool {
	return r != nil && r.IsSuccess()
}

// OutcomeError is the error form of a failed outcome.
type OutcomeError struct {
	Type    FailureType
	Message string
	Fields  map[string][]string
}

func (e *OutcomeError) Error() string {
	return e.Message
}

// Is matches the category sentinel for the failure type.
func (e *OutcomeError) Is(target error) bool {
	switch target {
	case ErrFailure:
		return true
	case ErrSecurity:
		return e.Type == FailureSecurity
	case ErrValidation:
		return e.Type == FailureValidation
	case ErrCanceled:
		return e.Type == FailureOperationCanceled
	}
	return false
}

// Summarize renders field errors as one "field: message" line per message.
// Fields follow order when given; remaining fields are appended sorted.
func Summarize(failures map[string][]string, order []string) string {
	var b strings.Builder
	seen := make(map[string]bool, len(failures))
	write := func(field string) {
		if seen[field] {
			return
		}
		seen[field] = true
		for _, msg := range failures[field] {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(field)
			b.WriteString(": ")
			b.WriteString(msg)
		}
	}
	for _, field := range order {
		if _, ok := failures[field]; ok {
			write(field)
		}
	}
	for _, field := range sortedFields(failures) {
		write(field)
	}
	return b.String()
}

func sortedFields(failures map[string][]string) []string {
	return slices.Sorted(maps.Keys(failures))
}

func cloneFailures(src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string][]string, len(src))
	for field, msgs := range src {
		if len(msgs) == 0 {
			continue
		}
		dst[field] = slices.Clone(msgs)
	}
	if len(dst) == 0 {
		return nil
	}
	return dst
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}
