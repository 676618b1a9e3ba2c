package validator

import "errors"

var (
	// ErrNilFactory is raised when Build is called without a factory.
	ErrNilFactory = errors.New("validator: factory must not be nil")

	// ErrNilRule is raised when a nil rule or callback is added to a chain.
	ErrNilRule = errors.New("validator: rule must not be nil")

	// ErrNoRule is raised when a modifier such as When or WithMessage is used
	// before any rule was added to the chain.
	ErrNoRule = errors.New("validator: modifier used before any rule")

	// ErrServiceNotFound is returned when a named service is not registered.
	ErrServiceNotFound = errors.New("validator: service not found")

	// ErrServiceType is returned when a registered service has an unexpected type.
	ErrServiceType = errors.New("validator: service has unexpected type")

	// ErrNoChecker is returned by lookup rules that have no Checker to consult.
	ErrNoChecker = errors.New("validator: no checker available")
)
