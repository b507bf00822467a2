package flash

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// dataKey holds a non-map payload passed to a "view:" message.
const dataKey = "data"

func toMessage(payload any) Message {
	if msg, ok := payload.(Message); ok {
		return msg.clone()
	}
	return Plain(toText(payload))
}

func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// toArgs turns a "sprintf:" payload into format arguments: nil is no
// arguments, slices and arrays expand, anything else is a single argument.
func toArgs(v any) []any {
	if v == nil {
		return nil
	}
	if items, ok := spread(v); ok {
		return items
	}
	return []any{v}
}

// spread returns the elements of a slice or array payload of any element
// type. Byte slices are text, not sequences.
func spread(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return slices.Clone(x), true
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// toData turns a "view:" payload into view data. Maps are copied; any other
// non-nil value is exposed to the view under the "data" key.
func toData(v any) map[string]any {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return maps.Clone(x)
	case map[string]string:
		data := make(map[string]any, len(x))
		for k, s := range x {
			data[k] = s
		}
		return data
	}
	return map[string]any{dataKey: v}
}
