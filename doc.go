// Package outcome is the root of a toolkit for returning operation outcomes
// as values instead of errors.
//
// The packages are:
//
//   - pkg/result: the Result and Of[T] outcome types, pattern matching,
//     Combine, the canonical JSON and YAML shape, and async helpers.
//   - pkg/validator: a rule-chain builder that turns per-field validation
//     into a result.Of[T], with sync, context-aware and async rules.
//   - pkg/async: the Future type used by the async helpers.
//   - pkg/httpresult: writes outcomes as HTTP JSON responses.
//   - pkg/redis and pkg/pg: lookup sources for the Unique and Exists rules.
//   - pkg/config, pkg/logger, pkg/environment: configuration, structured
//     logging and deployment stage helpers shared by the packages above.
//   - cmd/outcome: a CLI to reformat, check and combine serialized outcomes.
//
// A typical flow validates input with a builder and renders the outcome:
//
//	b := validator.New[User]()
//	validator.RuleFor(b, "Email", in.Email).Rules(validator.NotEmpty(), validator.EmailAddress())
//	validator.RuleFor(b, "Age", in.Age).Rule(validator.Between(18, 130))
//	res := b.Build(func() User { return User{Email: in.Email, Age: in.Age} })
//
//	return httpresult.JSONOf(res)
package outcome
