package flash

import "errors"

var (
	// ErrNoViewEngine is returned when a view message is rendered by a manager
	// created without a view engine.
	ErrNoViewEngine = errors.New("flash: no view engine configured")

	// ErrNoManager is returned when the request context carries no manager.
	ErrNoManager = errors.New("flash: manager not found in context")

	// ErrLoadingViews is returned when the view overrides file cannot be loaded.
	ErrLoadingViews = errors.New("flash: failed to load view overrides")
)
