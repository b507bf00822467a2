package flash

import (
	"context"
	"fmt"
)

// ViewEngine renders named views. pkg/view provides a templ-backed
// implementation.
type ViewEngine interface {
	// Exists reports whether a view is registered under name.
	Exists(name string) bool
	// Render renders the named view with data.
	Render(ctx context.Context, name string, data map[string]any) (string, error)
}

// nopEngine is used when a manager is created without a view engine.
type nopEngine struct{}

func (nopEngine) Exists(string) bool { return false }

func (nopEngine) Render(_ context.Context, name string, _ map[string]any) (string, error) {
	return "", fmt.Errorf("%w: %q", ErrNoViewEngine, name)
}
