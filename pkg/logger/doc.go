// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// transparent injection of values stored in context.Context and a
// process-wide logging facility with one or more sinks.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation – slog.NewTextHandler
// or slog.NewJSONHandler – based on the configured Format and wraps it with
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// before delegating to the underlying handler. Attributes produced by the
// decorator replace record attributes with the same key.
//
// Init builds the process-wide logger from a list of Target values (console or
// file), fanning every record out to each target that accepts its level.
// The facility is created once during startup, read-only afterwards and torn
// down by Close during shutdown. Default returns it, creating a JSON console
// logger on first use if Init was never called.
//
// Bind derives a logger whose records always carry the given attributes. It
// is how request-scoped loggers are built:
//
//	reqLog := logger.Bind(log, logger.RequestID(id))
//	reqLog.Info("charged card", "amount", 42) // ... amount=42 reqId=<id>
//
// # Usage
//
//	log, err := logger.Init([]logger.Target{
//	    {Type: logger.TargetConsole, Format: "text", Level: "debug"},
//	    {Type: logger.TargetFile, Path: "logs/app.log"},
//	}, logger.WithAttr(slog.String("service", "api")))
//	if err != nil {
//	    // handle
//	}
//	defer logger.Close()
//
// # Configuration
//
//   • WithDevelopment / WithStaging / WithProduction – defaults per environment.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel – set a custom slog.Level.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
