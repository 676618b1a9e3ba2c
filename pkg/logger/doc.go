// Package logger builds slog loggers from functional options and provides
// attribute helpers with consistent keys.
//
// New selects a text or JSON handler, applies a level and static attributes,
// and wraps the handler with LogHandlerDecorator so registered
// ContextExtractor callbacks can add attributes taken from the logging
// context:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "outcome"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "validation rule failed",
//	    logger.Field("Email"),
//	    logger.Error(err),
//	)
//
// Library packages that accept an optional logger fall back to Discard.
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
