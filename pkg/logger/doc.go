// Package logger builds *slog.Logger instances for unitkit and for the code
// that embeds it.
//
// New applies a set of Option values to produce a logger with the requested
// format (text or json), level, output and static attributes. The resulting
// handler is wrapped with LogHandlerDecorator so ContextExtractor callbacks can
// pull request-scoped values, such as the active formatting culture, out of a
// context.Context on every record.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log := logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
//	log.Debug("quantity parse failed",
//	    logger.Kind("ElectricResistance"),
//	    logger.Input("5.5 bogus"),
//	    logger.Error(err),
//	)
//
// Helpers that take an error or an optional value return an empty slog.Attr
// for nil input, which slog drops, so callers need no extra nil checks.
package logger
