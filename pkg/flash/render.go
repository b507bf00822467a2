package flash

import (
	"context"
	"maps"
	"strings"

	"github.com/dmitrymomot/flashbag/pkg/logger"
	"github.com/dmitrymomot/flashbag/pkg/printf"
)

// Render renders the messages addressed by where ("default.ALL" when empty).
// For "ALL" every type of the bag is rendered in insertion order and the
// blocks are joined with the block splitter.
// Errors from the view engine or a malformed format are returned as is.
func (m *Manager) Render(ctx context.Context, where string) (string, error) {
	bag, typ := ParseWhere(whereOrAll(where))
	b := m.readBag(bag)

	if typ != TypeAll {
		return m.RenderMessages(ctx, b.Get(typ), bag, typ)
	}

	types := b.Types()
	blocks := make([]string, 0, len(types))
	for _, t := range types {
		out, err := m.RenderMessages(ctx, b.Get(t), bag, t)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, out)
	}
	return strings.Join(blocks, m.settings.BlockSplitter()), nil
}

// RenderAll renders every type of the default bag.
func (m *Manager) RenderAll(ctx context.Context) (string, error) {
	return m.Render(ctx, allWhere)
}

// Get is Render under the name of an index lookup.
func (m *Manager) Get(ctx context.Context, where string) (string, error) {
	return m.Render(ctx, where)
}

// RenderMessages renders one type's messages.
//
// A list of plain messages is rendered once by the view resolved with
// ViewFor, which receives the texts under the MsgVariable key. Without a
// registered view each message goes through the default template with the
// text, bag and type as arguments. Formatted and view messages are rendered
// one by one. Per-message results are joined with the block splitter.
func (m *Manager) RenderMessages(ctx context.Context, msgs []Message, bag, typ string) (string, error) {
	if len(msgs) == 0 {
		return "", nil
	}

	if allPlain(msgs) {
		if view := m.ViewFor(bag, typ); view != "" {
			if m.engine.Exists(view) {
				out, err := m.renderView(ctx, view, map[string]any{
					m.settings.MsgVariable(): texts(msgs),
				})
				if err != nil {
					m.logRenderError(ctx, err, bag, typ, view)
					return "", err
				}
				return out, nil
			}
			m.logger.WarnContext(ctx, "flash view override is not registered, using default template",
				logger.Bag(bag),
				logger.MessageType(typ),
				logger.View(view),
			)
		}
	}

	tpl := m.settings.DefaultTemplate()
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		var (
			out string
			err error
		)
		switch msg.Kind {
		case KindFormatted:
			out, err = printf.Sprintf(msg.Format, msg.Args...)
		case KindView:
			out, err = m.renderView(ctx, msg.View, msg.Data)
		default:
			out, err = printf.Sprintf(tpl, msg.Text, bag, typ)
		}
		if err != nil {
			m.logRenderError(ctx, err, bag, typ, msg.View)
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, m.settings.BlockSplitter()), nil
}

// ViewFor resolves the view used to render a plain message list:
// a registered view named "bag.type", then the configured overrides for
// "bag.type", "type", "default.type", "msg" and "default.msg".
// An empty result means the default template is used.
func (m *Manager) ViewFor(bag, typ string) string {
	if name := JoinWhere(bag, typ); m.engine.Exists(name) {
		return name
	}
	view, _ := m.settings.override(bag, typ)
	return view
}

// renderView renders name with a copy of data that also exposes the manager
// under the ViewShare key, unless data already uses that key.
func (m *Manager) renderView(ctx context.Context, name string, data map[string]any) (string, error) {
	vars := make(map[string]any, len(data)+1)
	if share := m.settings.ViewShare(); share != "" {
		vars[share] = m
	}
	maps.Copy(vars, data)
	return m.engine.Render(ctx, name, vars)
}

func (m *Manager) logRenderError(ctx context.Context, err error, bag, typ, view string) {
	m.logger.ErrorContext(ctx, "failed to render flash messages",
		logger.Where(JoinWhere(bag, typ)),
		logger.View(view),
		logger.Error(err),
	)
}
