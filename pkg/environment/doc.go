// Package environment carries the current deployment stage (development,
// staging or production) through context.Context and into structured logs.
//
// The outcome CLI parses OUTCOME_ENV with Parse, stores it with WithContext and
// registers LoggerExtractor so every log record carries an "env" attribute.
//
//	ctx := environment.WithContext(ctx, environment.Parse(cfg.Env))
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
package environment
