package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Bag records a notification bag (namespace) under the key "bag".
func Bag(name string) slog.Attr {
	return slog.String("bag", name)
}

// MessageType records a notification type under the key "message_type".
func MessageType(typ string) slog.Attr {
	return slog.String("message_type", typ)
}

// MessageKind records the payload kind (plain, formatted, view) under the key "message_kind".
func MessageKind(kind string) slog.Attr {
	return slog.String("message_kind", kind)
}

// View records a view name under the key "view".
// An empty name returns an empty Attr.
func View(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("view", name)
}

// Where records a raw "bag.type" specifier under the key "where".
func Where(spec string) slog.Attr {
	return slog.String("where", spec)
}

// Count records a message count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
