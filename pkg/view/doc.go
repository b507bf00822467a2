// Package view provides a registry of named templ views for rendering flash
// messages.
//
// A view is a factory that builds a templ.Component from the data map the
// flash manager passes at render time. The Registry satisfies
// flash.ViewEngine:
//
//	views := view.NewRegistry()
//	views.Register("alerts.danger", func(data map[string]any) templ.Component {
//	    items, _ := data["notifications"].([]string)
//	    return components.DangerList(items)
//	})
//
//	m := flash.NewManager(settings, views)
//
// Components that take no data are registered with RegisterComponent.
package view
