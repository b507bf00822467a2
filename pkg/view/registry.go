package view

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// Factory builds a component from view data.
type Factory func(data map[string]any) templ.Component

// Registry maps view names to factories. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	views map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]Factory)}
}

// Register adds or replaces the view called name.
// It panics when factory is nil.
func (r *Registry) Register(name string, factory Factory) *Registry {
	if factory == nil {
		panic(fmt.Sprintf("view: nil factory for %q", name))
	}
	r.mu.Lock()
	r.views[name] = factory
	r.mu.Unlock()
	return r
}

// RegisterComponent registers a component that ignores view data.
func (r *Registry) RegisterComponent(name string, c templ.Component) *Registry {
	return r.Register(name, func(map[string]any) templ.Component { return c })
}

// Exists reports whether name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.views[name]
	return ok
}

// Names returns the registered view names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Render builds the named view with data and renders it to a string.
func (r *Registry) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	r.mu.RLock()
	factory, ok := r.views[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}

	c := factory(data)
	if c == nil {
		return "", fmt.Errorf("%w: %q", ErrNilComponent, name)
	}

	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
