// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses a valid X-Request-ID header or generates a UUIDv7, puts
// it in the request context and echoes it back. LoggerExtractor plugs into
// logger.WithContextExtractors so that flash render errors and other request
// logs carry the ID.
package requestid
