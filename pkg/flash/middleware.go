package flash

import "net/http"

// Middleware creates a fresh Manager for every request and stores it in the
// request context. settings and engine are shared by all requests.
//
//	r := chi.NewRouter()
//	r.Use(flash.Middleware(settings, views, flash.WithLogger(log)))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    flash.MustFromContext(r.Context()).AddSuccess("Profile saved")
//	}
func Middleware(settings *Settings, engine ViewEngine, opts ...Option) func(http.Handler) http.Handler {
	if settings == nil {
		settings = DefaultSettings()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := NewManager(settings, engine, opts...)
			next.ServeHTTP(w, r.WithContext(WithManager(r.Context(), m)))
		})
	}
}
