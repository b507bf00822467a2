// Package environment carries the deployment environment (development,
// staging, production) through request contexts.
//
// The flash demo server parses APP_ENV with Parse, hands it to the logger
// factory and attaches it to each request with Middleware, so handlers can
// gate development-only routes:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	log := logger.New(logger.WithEnvironment(env, "flashdemo"))
//	r.Use(environment.Middleware(env))
//
//	if !environment.IsDevelopment(r.Context()) {
//	    http.NotFound(w, r)
//	}
package environment
