package result

import "fmt"

// Match dispatches on success or failure and returns the handler's value.
func Match[U any](r Result, onSuccess func() U, onFailure func(Result) U) U {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	if r.IsSuccess() {
		return onSuccess()
	}
	return onFailure(r)
}

// MatchOf is Match for typed outcomes; onSuccess receives the value.
func MatchOf[T, U any](r Of[T], onSuccess func(T) U, onFailure func(Result) U) U {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.outcome)
}

// MatchByType dispatches failures by their FailureType. Every handler is
// required.
func MatchByType[U any](
	r Result,
	onSuccess func() U,
	onError, onSecurity, onValidation, onCanceled func(Result) U,
) U {
	requireHandlers(handler{"onSuccess", onSuccess == nil})
	return MatchOfByType(Of[struct{}]{outcome: r},
		func(struct{}) U { return onSuccess() },
		onError, onSecurity, onValidation, onCanceled)
}

// MatchOfByType is MatchByType for typed outcomes.
func MatchOfByType[T, U any](
	r Of[T],
	onSuccess func(T) U,
	onError, onSecurity, onValidation, onCanceled func(Result) U,
) U {
	requireHandlers(
		handler{"onSuccess", onSuccess == nil},
		handler{"onError", onError == nil},
		handler{"onSecurity", onSecurity == nil},
		handler{"onValidation", onValidation == nil},
		handler{"onCanceled", onCanceled == nil},
	)
	switch r.FailureType() {
	case FailureNone:
		return onSuccess(r.value)
	case FailureSecurity:
		return onSecurity(r.outcome)
	case FailureValidation:
		return onValidation(r.outcome)
	case FailureOperationCanceled:
		return onCanceled(r.outcome)
	default:
		return onError(r.outcome)
	}
}

// Switch runs onSuccess or onFailure. When includeCanceled is false an
// OperationCanceled failure invokes neither handler.
func (r Result) Switch(onSuccess func(), onFailure func(Result), includeCanceled bool) {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	switch {
	case r.IsSuccess():
		onSuccess()
	case r.failureType == FailureOperationCanceled && !includeCanceled:
	default:
		onFailure(r)
	}
}

// SwitchByType runs the handler matching the failure type. onCanceled is
// optional; when nil, cancellation failures are ignored.
func (r Result) SwitchByType(onSuccess func(), onError, onSecurity, onValidation, onCanceled func(Result)) {
	requireHandlers(handler{"onSuccess", onSuccess == nil})
	Of[struct{}]{outcome: r}.SwitchByType(
		func(struct{}) { onSuccess() },
		onError, onSecurity, onValidation, onCanceled)
}

// Switch is Result.Switch for typed outcomes.
func (r Of[T]) Switch(onSuccess func(T), onFailure func(Result), includeCanceled bool) {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	switch {
	case r.IsSuccess():
		onSuccess(r.value)
	case r.FailureType() == FailureOperationCanceled && !includeCanceled:
	default:
		onFailure(r.outcome)
	}
}

// SwitchByType is Result.SwitchByType for typed outcomes.
func (r Of[T]) SwitchByType(onSuccess func(T), onError, onSecurity, onValidation, onCanceled func(Result)) {
	requireHandlers(
		handler{"onSuccess", onSuccess == nil},
		handler{"onError", onError == nil},
		handler{"onSecurity", onSecurity == nil},
		handler{"onValidation", onValidation == nil},
	)
	switch r.FailureType() {
	case FailureNone:
		onSuccess(r.value)
	case FailureSecurity:
		onSecurity(r.outcome)
	case FailureValidation:
		onValidation(r.outcome)
	case FailureOperationCanceled:
		if onCanceled != nil {
			onCanceled(r.outcome)
		}
	default:
		onError(r.outcome)
	}
}

type handler struct {
	name  string
	isNil bool
}

func requireHandlers(hs ...handler) {
	for _, h := range hs {
		if h.isNil {
			panic(fmt.Errorf("%w: %s", ErrNilHandler, h.name))
		}
	}
}
