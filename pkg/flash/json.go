package flash

import (
	"bytes"
	"encoding/json"
)

// Group is the list of messages stored under one type.
type Group struct {
	Type     string
	Messages []Message
}

// Groups is an ordered type → messages mapping. It encodes to a JSON object
// whose keys keep insertion order.
type Groups []Group

// Get returns the messages of typ, or nil.
func (g Groups) Get(typ string) []Message {
	for _, group := range g {
		if group.Type == typ {
			return group.Messages
		}
	}
	return nil
}

// Types returns the group types in order.
func (g Groups) Types() []string {
	types := make([]string, len(g))
	for i, group := range g {
		types[i] = group.Type
	}
	return types
}

// MarshalJSON encodes the groups as {"type": [messages...], ...}.
func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(group.Type)
		if err != nil {
			return nil, err
		}
		msgs := group.Messages
		if msgs == nil {
			msgs = []Message{}
		}
		val, err := marshalRaw(msgs)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSONOption configures JSON output.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	prefix     string
	indent     string
	escapeHTML bool
}

// WithIndent pretty-prints the output like json.MarshalIndent.
func WithIndent(prefix, indent string) JSONOption {
	return func(o *jsonOptions) {
		o.prefix = prefix
		o.indent = indent
	}
}

// WithEscapeHTML controls escaping of <, > and & inside strings.
// Escaping is enabled by default.
func WithEscapeHTML(escape bool) JSONOption {
	return func(o *jsonOptions) {
		o.escapeHTML = escape
	}
}

func encodeJSON(v any, opts ...JSONOption) ([]byte, error) {
	o := jsonOptions{escapeHTML: true}
	for _, opt := range opts {
		opt(&o)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(o.escapeHTML)
	enc.SetIndent(o.prefix, o.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalRaw encodes without HTML escaping; the outer encoder applies the
// caller's escaping policy to the combined output.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
