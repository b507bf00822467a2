package main

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/flashbag/pkg/flash"
)

type notFound struct{}

func (notFound) Render(w http.ResponseWriter, r *http.Request) error {
	http.NotFound(w, r)
	return nil
}

// configResponse exposes the live flash configuration, including overrides
// changed at runtime.
type configResponse struct {
	settings *flash.Settings
}

func (c configResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	cfg := c.settings.Config()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"views":            cfg.Views,
		"view_share":       cfg.ViewShare,
		"msg_variable":     cfg.MsgVariable,
		"default_template": cfg.DefaultTemplate,
		"block_splitter":   cfg.BlockSplitter,
	})
}
