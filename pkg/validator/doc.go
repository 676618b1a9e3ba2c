// Package validator builds result outcomes from declarative per-field rule
// chains.
//
// A Builder collects fields registered with RuleFor or RuleForEach. Each field
// owns an ordered chain of rules. Build evaluates every rule of every field in
// registration order and never stops at the first failing rule, so a field
// with three broken rules reports three messages. When no rule reports a
// message the factory is invoked and its value wrapped in a success;
// otherwise the result is a validation failure keyed by display name.
//
//	b := validator.New[User]()
//	validator.RuleFor(b, "Email", in.Email).Rules(validator.NotEmpty(), validator.EmailAddress())
//	validator.RuleFor(b, "Age", in.Age).Rule(validator.Between(18, 130))
//	res := b.Build(func() User { return User{Email: in.Email, Age: in.Age} })
//
// # Rule kinds
//
// Rule is a pure function of the value and its display name. ContextRule also
// receives a Context carrying the validated root object, a service locator and
// custom data. AsyncRule additionally receives a context.Context and may block
// on I/O, for example to check uniqueness against a database with Unique.
//
// An AsyncRule error aborts validation: a cancellation or deadline error
// becomes an OperationCanceled outcome, any other error a plain failure.
//
// # Contexts
//
// Each field is validated with a child Context whose path is the field name.
// A child copies its parent's custom data when it is created, so values set
// on a child are never visible to the parent or to siblings.
package validator
