// Package handler delivers flash notifications over HTTP.
//
// A Response renders itself to the http.ResponseWriter. Notifications
// renders the messages of the request's flash.Manager as HTML, or as a
// DataStar element patch when the request comes from DataStar (see
// IsDataStar). NotificationsJSON encodes them for API clients.
//
// Wrap and Serve adapt responses to http.HandlerFunc; render errors go to
// an ErrorHandler, which by default logs them and answers 500.
//
//	r := chi.NewRouter()
//	r.Use(flash.Middleware(settings, views))
//
//	r.Post("/profile", handler.Wrap(func(r *http.Request) handler.Response {
//		flash.MustFromContext(r.Context()).AddSuccess("Profile saved")
//		return handler.Notifications("", handler.WithTarget("#flash"))
//	}))
//	r.Get("/flash.json", handler.Serve(handler.NotificationsJSON("")))
package handler
