package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/flashbag/handler"
	"github.com/dmitrymomot/flashbag/pkg/environment"
	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/httpserver"
	"github.com/dmitrymomot/flashbag/pkg/logger"
	"github.com/dmitrymomot/flashbag/pkg/requestid"
	"github.com/dmitrymomot/flashbag/pkg/view"
)

var defaultTexts = map[string]string{
	"success": "Changes saved",
	"error":   "Something went wrong",
	"warning": "Check your input",
	"info":    "Heads up",
}

func newRouter(env environment.Environment, settings *flash.Settings, views *view.Registry, log *slog.Logger) http.Handler {
	wrap := func(h handler.HandlerFunc) http.HandlerFunc {
		return handler.Wrap(h, handler.WithLogger(log))
	}
	patch := []handler.PatchOption{
		handler.WithTarget("#flash"),
		handler.WithPatchMode(handler.PatchInner),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(env))
	r.Use(flash.Middleware(settings, views, flash.WithLogger(log.With(logger.Component("flash")))))

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, viewsReady(views)))

	r.Get("/", wrap(func(r *http.Request) handler.Response {
		flash.MustFromContext(r.Context()).AddInfo("Welcome! Pick a notification below.")
		return handler.Templ(page("Flash messages"))
	}))

	r.Post("/notify/{type}", wrap(func(r *http.Request) handler.Response {
		typ := chi.URLParam(r, "type")
		text := r.FormValue("text")
		if text == "" {
			text = defaultTexts[typ]
		}
		m := flash.MustFromContext(r.Context())
		m.Add(typ, text)
		m.Add("view:"+viewCounter, nil)
		return handler.Notifications("", patch...)
	}))

	r.Post("/promo", wrap(func(r *http.Request) handler.Response {
		flash.MustFromContext(r.Context()).Add("view:"+viewPromo, map[string]any{
			"code":     "SPRING",
			"discount": 20,
		})
		return handler.Notifications("view", patch...)
	}))

	r.Get("/demo.json", wrap(func(r *http.Request) handler.Response {
		seed(flash.MustFromContext(r.Context()))
		return handler.NotificationsJSON(r.URL.Query().Get("where"))
	}))

	r.Get("/demo", wrap(func(r *http.Request) handler.Response {
		seed(flash.MustFromContext(r.Context()))
		return handler.Notifications(r.URL.Query().Get("where"), patch...)
	}))

	r.Get("/debug/config", wrap(func(r *http.Request) handler.Response {
		if !environment.IsDevelopment(r.Context()) {
			return notFound{}
		}
		return configResponse{settings: settings}
	}))

	return r
}

// seed fills a manager with one message of every kind.
func seed(m *flash.Manager) {
	m.AddError("Bad input")
	m.AddSuccess("Profile saved")
	m.Add("billing.sprintf:Invoice %s is %d days overdue", []any{"#12", 3})
	m.Add("view:"+viewPromo, map[string]any{"code": "SPRING", "discount": 20})
}

// viewsReady fails until every demo view is registered.
func viewsReady(views *view.Registry) func(context.Context) error {
	return func(context.Context) error {
		for _, name := range []string{viewDanger, viewSuccess, viewPromo, viewCounter} {
			if !views.Exists(name) {
				return fmt.Errorf("view %q is not registered", name)
			}
		}
		return nil
	}
}
