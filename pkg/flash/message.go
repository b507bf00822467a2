package flash

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies how a message is rendered.
// It is fixed when the message is added, so a type name that happens to equal
// a reserved word never changes how the payload is rendered.
type Kind uint8

const (
	// KindPlain is a text message rendered through the type's view or the
	// default template.
	KindPlain Kind = iota
	// KindFormatted is a format string with positional arguments.
	KindFormatted
	// KindView is a named view rendered with its own data.
	KindView
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFormatted:
		return "formatted"
	case KindView:
		return "view"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Message is a single flash notification payload.
type Message struct {
	Kind Kind

	// Text is the content of a plain message.
	Text string

	// Format and Args describe a formatted message.
	Format string
	Args   []any

	// View and Data describe a view message.
	View string
	Data map[string]any
}

// Plain creates a plain text message.
func Plain(text string) Message {
	return Message{Kind: KindPlain, Text: text}
}

// Formatted creates a message rendered as format applied to args.
func Formatted(format string, args ...any) Message {
	return Message{Kind: KindFormatted, Format: format, Args: args}
}

// Templated creates a message rendered by the named view with data.
func Templated(view string, data map[string]any) Message {
	return Message{Kind: KindView, View: view, Data: data}
}

// Value returns the payload in its portable shape: a string for plain
// messages, [format, args...] for formatted ones and {"view", "data"} for
// view messages. JSON output uses the same shapes.
func (m Message) Value() any {
	switch m.Kind {
	case KindFormatted:
		return append([]any{m.Format}, m.Args...)
	case KindView:
		data := m.Data
		if data == nil {
			data = map[string]any{}
		}
		return map[string]any{"view": m.View, "data": data}
	default:
		return m.Text
	}
}

// MarshalJSON encodes the message using the shape returned by Value.
func (m Message) MarshalJSON() ([]byte, error) {
	return marshalRaw(m.Value())
}

func (m Message) clone() Message {
	m.Args = slices.Clone(m.Args)
	m.Data = maps.Clone(m.Data)
	return m
}

func texts(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = msg.Text
	}
	return out
}

func allPlain(msgs []Message) bool {
	for _, msg := range msgs {
		if msg.Kind != KindPlain {
			return false
		}
	}
	return true
}
