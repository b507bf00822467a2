package flash

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component returns a templ component that renders where at render time,
// for embedding the messages in a templ layout:
//
//	@flash.MustFromContext(ctx).Component("")
func (m *Manager) Component(where string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := m.Render(ctx, where)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// ContextComponent renders where using the manager stored in the render
// context. Without a manager it renders nothing.
func ContextComponent(where string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m, ok := FromContext(ctx)
		if !ok {
			return nil
		}
		return m.Component(where).Render(ctx, w)
	})
}
