// Package logger builds log/slog loggers with functional options and provides
// attribute helpers shared across the module.
//
// New creates a *slog.Logger with a text or JSON handler wrapped in
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record so request-scoped values (such as the request id) end up in
// the output without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "flashdemo"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "override names an unregistered view",
//	    logger.Bag("billing"),
//	    logger.MessageType("error"),
//	    logger.View("billing.alert"),
//	)
//
// # Attributes
//
// Helpers in attr.go keep key names consistent: Bag, MessageType,
// MessageKind, View, Where and Count describe flash notifications; Error and
// Errors return an empty Attr for nil errors so they can be passed
// unconditionally.
package logger
