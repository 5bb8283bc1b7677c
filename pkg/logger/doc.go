// Package logger builds *slog.Logger instances with a consistent set of
// options and attribute names.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// handler with ContextHandler, which runs every registered ContextExtractor
// against the record's context. That is how request ids and notification
// tickets end up on log lines without being passed around explicitly:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "progressmaker"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        notifications.LoggerExtractor(),
//	    ),
//	)
//	slog.SetDefault(log)
//
// The attribute helpers (Error, Component, TicketID, ...) return an empty
// slog.Attr for empty input, so callers can pass them unconditionally:
//
//	log.WarnContext(ctx, "present failed", logger.Error(err), logger.TicketID(id))
package logger
