package main

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/view"
)

// View names used by the demo. The alert lists are meant to be selected
// through FLASH_VIEWS, e.g. FLASH_VIEWS=error:alerts.danger,success:alerts.success.
const (
	viewDanger  = "alerts.danger"
	viewSuccess = "alerts.success"
	viewPromo   = "alerts.promo"
	viewCounter = "alerts.counter"
)

func newViews() *view.Registry {
	return view.NewRegistry().
		Register(viewDanger, view.List("notifications", "alert alert-danger")).
		Register(viewSuccess, view.List("notifications", "alert alert-success")).
		Register(viewPromo, promoView).
		Register(viewCounter, counterView)
}

// promoView renders a coupon banner from {"code": ..., "discount": ...}.
func promoView(data map[string]any) templ.Component {
	code := fmt.Sprint(data["code"])
	discount := fmt.Sprint(data["discount"])
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<aside class="promo">Use <code>%s</code> for %s%% off</aside>`,
			templ.EscapeString(code), templ.EscapeString(discount))
		return err
	})
}

// counterView shows how many messages the request collected, using the
// manager shared with every view.
func counterView(data map[string]any) templ.Component {
	m, _ := data["messages"].(*flash.Manager)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		n := 0
		if m != nil {
			n = m.Count()
		}
		_, err := fmt.Fprintf(w, `<span class="badge">%d</span>`, n)
		return err
	})
}

// page is the demo layout; notifications are rendered in place from the
// request's manager.
func page(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html><html><head><title>%s</title>`+
			`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"></script>`+
			`</head><body><h1>%s</h1><div id="flash">`,
			templ.EscapeString(title), templ.EscapeString(title)); err != nil {
			return err
		}
		if err := flash.ContextComponent("").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`+
			`<button data-on-click="@post('/notify/success')">Success</button>`+
			`<button data-on-click="@post('/notify/error')">Error</button>`+
			`<button data-on-click="@post('/promo')">Promo</button>`+
			`</body></html>`)
		return err
	})
}
