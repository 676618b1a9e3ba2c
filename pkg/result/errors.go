package result

import "errors"

// Usage faults. These are programmer errors and are raised via panic (or
// returned from the non-panicking conversion helpers), never encoded as
// outcome states.
var (
	// ErrNilValue is raised when a success is constructed with an absent value.
	ErrNilValue = errors.New("result: success value must not be nil")

	// ErrInvalidState is raised when a value is extracted from a failed outcome
	// or when factory arguments would break the outcome invariants.
	ErrInvalidState = errors.New("result: invalid outcome state")

	// ErrNilHandler is raised when a dispatch method receives a nil handler.
	ErrNilHandler = errors.New("result: handler must not be nil")

	// ErrMalformed is returned when an encoded outcome cannot be decoded.
	ErrMalformed = errors.New("result: malformed outcome payload")
)

// Category sentinels. Failure errors match them with errors.Is, and FromError
// uses them to classify arbitrary errors.
var (
	ErrFailure    = errors.New("failure")
	ErrSecurity   = errors.New("security failure")
	ErrValidation = errors.New("validation failure")
	ErrCanceled   = errors.New("operation canceled")
)

const (
	noResultsMessage   = "No results to combine"
	nilResultMessage   = "result is nil"
	notFoundMessage    = "Resource not found"
	serverErrorMessage = "An unexpected server error occurred"
	validationMessage  = "Validation failed"
)
