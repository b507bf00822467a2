package flash_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/logger"
)

// stubEngine renders views from in-memory functions and records calls.
type stubEngine struct {
	views map[string]func(data map[string]any) (string, error)
	calls []stubCall
}

type stubCall struct {
	name string
	data map[string]any
}

func newStubEngine() *stubEngine {
	return &stubEngine{views: make(map[string]func(map[string]any) (string, error))}
}

func (e *stubEngine) with(name string, fn func(data map[string]any) (string, error)) *stubEngine {
	e.views[name] = fn
	return e
}

func (e *stubEngine) Exists(name string) bool {
	_, ok := e.views[name]
	return ok
}

func (e *stubEngine) Render(_ context.Context, name string, data map[string]any) (string, error) {
	e.calls = append(e.calls, stubCall{name: name, data: data})
	fn, ok := e.views[name]
	if !ok {
		return "", fmt.Errorf("view %q not found", name)
	}
	return fn(data)
}

// listView renders the texts passed under the "notifications" key.
func listView(class string) func(map[string]any) (string, error) {
	return func(data map[string]any) (string, error) {
		items, _ := data["notifications"].([]string)
		var sb strings.Builder
		sb.WriteString(`<ul class="` + class + `">`)
		for _, item := range items {
			sb.WriteString("<li>" + item + "</li>")
		}
		sb.WriteString("</ul>")
		return sb.String(), nil
	}
}

// MockEngine for asserting exact view engine interaction.
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Exists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockEngine) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func newSettings(mutate func(*flash.Config)) *flash.Settings {
	cfg := flash.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return flash.NewSettings(cfg)
}

func newManager(settings *flash.Settings, engine flash.ViewEngine) *flash.Manager {
	return flash.NewManager(settings, engine, flash.WithLogger(logger.Discard()))
}
