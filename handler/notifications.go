package handler

import (
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/flashbag/pkg/flash"
)

// notificationsResponse renders the request's flash messages.
type notificationsResponse struct {
	where   string
	options []PatchOption
}

// Render outputs the messages via SSE for DataStar or as HTML for regular
// requests. Messages are rendered before anything is written, so a render
// error leaves the response untouched.
func (n notificationsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	m, ok := flash.FromContext(r.Context())
	if !ok {
		return flash.ErrNoManager
	}

	out, err := m.Render(r.Context(), n.where)
	if err != nil {
		return err
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElements(out, n.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = io.WriteString(w, out)
	return err
}

// Notifications creates a response with the rendered messages addressed by
// where ("default.ALL" when empty). The manager comes from the request
// context, see flash.Middleware.
//
// Patching a container for DataStar requests:
//
//	return handler.Notifications("",
//		handler.WithTarget("#flash"),
//		handler.WithPatchMode(handler.PatchInner),
//	)
func Notifications(where string, opts ...PatchOption) Response {
	return notificationsResponse{where: where, options: opts}
}

// notificationsJSONResponse encodes the request's flash messages.
type notificationsJSONResponse struct {
	where   string
	options []flash.JSONOption
}

func (n notificationsJSONResponse) Render(w http.ResponseWriter, r *http.Request) error {
	m, ok := flash.FromContext(r.Context())
	if !ok {
		return flash.ErrNoManager
	}

	body, err := m.JSON(n.where, n.options...)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(body)
	return err
}

// NotificationsJSON creates a JSON response with the messages addressed by
// where: an object keyed by type for "ALL" specifiers, an array otherwise.
func NotificationsJSON(where string, opts ...flash.JSONOption) Response {
	return notificationsJSONResponse{where: where, options: opts}
}
