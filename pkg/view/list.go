package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Items returns the string slice stored under key in data.
// It accepts []string and []any; other values yield nil.
func Items(data map[string]any, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	}
	return nil
}

// List is a ready-made view that renders the items under key as an HTML
// list with the given CSS class. Item text is HTML-escaped.
func List(key, class string) Factory {
	return func(data map[string]any) templ.Component {
		items := Items(data, key)
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			if len(items) == 0 {
				return nil
			}
			if _, err := io.WriteString(w, `<ul class="`+templ.EscapeString(class)+`">`); err != nil {
				return err
			}
			for _, item := range items {
				if _, err := io.WriteString(w, "<li>"+templ.EscapeString(item)+"</li>"); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, "</ul>")
			return err
		})
	}
}
