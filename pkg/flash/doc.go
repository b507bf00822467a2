// Package flash collects user-facing notifications during a request and
// renders them into view-ready HTML at response time.
//
// Messages are grouped by bag (a namespace) and type. A "where" specifier
// addresses them:
//
//	"warning"        type "warning" in the "default" bag
//	"billing.unpaid" type "unpaid" in the "billing" bag
//	"billing."       type "msg" in the "billing" bag
//	"default.ALL"    every type of the default bag (queries and rendering only)
//
// # Message kinds
//
// Every message carries its Kind, fixed when it is added:
//
//   - Plain text, rendered by a view resolved for its bag and type, or by the
//     default template.
//   - Formatted, added with the "sprintf:" prefix: a format string with
//     positional arguments ("%s", "%2$s"), rendered by pkg/printf.
//   - View, added with the "view:" prefix: a view name plus data, rendered by
//     the ViewEngine.
//
// # Usage
//
//	settings := flash.NewSettings(flash.MustLoadConfig())
//	views := view.NewRegistry()
//
//	m := flash.NewManager(settings, views)
//	m.Add("error", "Bad input")
//	m.Add("billing.sprintf:Invoice %s is %d days overdue", []any{"#12", 3})
//	m.Add("view:alerts.promo", map[string]any{"code": "SPRING"})
//	m.Push([]string{"Saved", "Email sent"})
//
//	html, err := m.RenderAll(ctx)
//
// In HTTP handlers Middleware creates one Manager per request and
// FromContext retrieves it. Component embeds rendered output in templ
// layouts.
//
// # Template resolution
//
// Plain messages of one type are rendered together by the first view found:
//
//  1. a registered view named "bag.type";
//  2. the override for "bag.type";
//  3. the override for "type";
//  4. the override for "default.type";
//  5. the override for "msg";
//  6. the override for "default.msg".
//
// The first override key that is present wins, even with an empty value. A
// bare "type" override therefore applies to that type in every bag that has
// no "bag.type" entry. Without a registered view each message is formatted
// with Config.DefaultTemplate, which receives the text, bag and type.
//
// # Concurrency
//
// Manager, Store and Bag are request-scoped and not synchronised. Settings is
// shared by all requests and safe for concurrent use.
package flash
