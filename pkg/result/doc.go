// Package result provides an outcome value that replaces (T, error) pairs where
// callers need to know why something failed, not only that it did.
//
// An outcome is either a success or a failure. Every outcome carries a
// ResultType (severity) and a FailureType (classification); FailureNone is
// used exactly when the outcome succeeded. A failure has a non-empty message,
// and a FailureValidation failure also carries a per-field map of messages.
// Result is the value-less form and Of[T] carries a value on success.
//
// # Usage
//
//	func FindUser(id string) result.Of[*User] {
//	    u, err := repo.Get(id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return result.NotFoundOf[*User]("user not found")
//	    }
//	    if err != nil {
//	        return result.FromErrorOf[*User](err)
//	    }
//	    return result.SuccessOf(u)
//	}
//
//	msg := result.MatchOf(FindUser(id),
//	    func(u *User) string { return "hello " + u.Name },
//	    func(r result.Result) string { return r.ErrorMessage() },
//	)
//
// # Combining outcomes
//
// Combine and CombineOf fold many outcomes into one. Any failure makes the
// combined outcome a FailureValidation whose field map collects plain,
// security and cancellation messages under the "Error", "Security" and
// "OperationCanceled" keys next to merged validation fields. CombineAsync runs
// producers concurrently and waits for all of them before combining.
//
// # Error Handling
//
// Outcome failures are values and are never raised. Usage faults are: building
// a success from a nil value (ErrNilValue), reading the value of a failed
// outcome (ErrInvalidState) and passing a nil handler to a dispatch function
// (ErrNilHandler) panic with the wrapped sentinel. FromValue and Of.Value are
// the non-panicking alternatives.
//
// # Encoding
//
// Result and Of[T] implement json.Marshaler and yaml.Marshaler using the
// canonical shape described on Codec. A Codec value controls the field naming
// convention and indentation.
package result
