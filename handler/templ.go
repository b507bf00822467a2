package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// templResponse wraps a templ component to implement Response
type templResponse struct {
	component templ.Component
	options   []PatchOption
}

// Render outputs the component via SSE for DataStar or as HTML for regular
// requests.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component, typically a full page
// whose layout embeds flash.ContextComponent.
func Templ(component templ.Component, opts ...PatchOption) Response {
	return templResponse{component: component, options: opts}
}
