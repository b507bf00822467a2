package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc produces the response for a request.
//
//	handler.Wrap(func(r *http.Request) handler.Response {
//		flash.MustFromContext(r.Context()).AddSuccess("Saved")
//		return handler.Notifications("")
//	})
type HandlerFunc func(r *http.Request) Response

// ErrorHandler handles errors returned while rendering a response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// defaultErrorHandler logs the error and writes a plain 500 response.
// A missing flash manager is a wiring mistake and is reported the same way.
func defaultErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "failed to render response",
			logger.Error(err),
			slog.String("path", r.URL.Path),
			slog.Bool("no_manager", errors.Is(err, flash.ErrNoManager)),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Wrap converts a HandlerFunc to http.HandlerFunc.
func Wrap(h HandlerFunc, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = defaultErrorHandler(cfg.logger)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		response := h(r)
		if response == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// Serve adapts a fixed response to http.HandlerFunc.
//
//	r.Get("/notifications", handler.Serve(handler.Notifications("")))
func Serve(resp Response, opts ...WrapOption) http.HandlerFunc {
	return Wrap(func(*http.Request) Response { return resp }, opts...)
}
