package flash

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/flashbag/pkg/logger"
)

// Manager collects flash messages for one request and renders them.
// It is not safe for concurrent use; create one per request (see Middleware).
type Manager struct {
	store    *Store
	settings *Settings
	engine   ViewEngine
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a manager with an empty store.
// Nil settings fall back to DefaultSettings; a nil engine knows no views.
func NewManager(settings *Settings, engine ViewEngine, opts ...Option) *Manager {
	if settings == nil {
		settings = DefaultSettings()
	}
	if engine == nil {
		engine = nopEngine{}
	}

	m := &Manager{
		store:    NewStore(),
		settings: settings,
		engine:   engine,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add stores payload under the where specifier and returns the number of
// messages now held by the target type.
//
// where is "type", "bag.type", "bag." or one of the mode prefixes:
//
//	m.Add("warning", "Disk almost full")
//	m.Add("billing.unpaid", "Invoice #12 is overdue")
//	m.Add("sprintf:Hello %s, you have %d new messages", []any{"Ann", 3})
//	m.Add("sidebar.view:alerts.promo", map[string]any{"code": "SPRING"})
//
// A sprintf payload supplies the format arguments (a slice expands, any other
// value is one argument). A view payload is the view data.
func (m *Manager) Add(where string, payload any) int {
	spec, msg := resolveMode(where, payload)
	bag, typ := ParseWhere(spec)
	return m.append(bag, typ, msg)
}

// Push stores payload in the default bag under the "msg" type.
// Slices and arrays are added element by element; the result is the count
// after the last element.
func (m *Manager) Push(payload any) int {
	items, ok := spread(payload)
	if !ok {
		return m.Add(defaultWhere, payload)
	}
	n := 0
	for _, item := range items {
		n = m.Add(defaultWhere, item)
	}
	return n
}

// AddInfo adds an "info" message to the default bag.
func (m *Manager) AddInfo(text string) int { return m.Add("info", text) }

// AddSuccess adds a "success" message to the default bag.
func (m *Manager) AddSuccess(text string) int { return m.Add("success", text) }

// AddWarning adds a "warning" message to the default bag.
func (m *Manager) AddWarning(text string) int { return m.Add("warning", text) }

// AddError adds an "error" message to the default bag.
func (m *Manager) AddError(text string) int { return m.Add("error", text) }

// Sprintf adds a formatted message to bag (the default bag when empty).
func (m *Manager) Sprintf(bag, format string, args ...any) int {
	return m.append(bagOrDefault(bag), TypeSprintf, Formatted(format, args...))
}

// View adds a view message to bag (the default bag when empty).
func (m *Manager) View(bag, view string, data map[string]any) int {
	return m.append(bagOrDefault(bag), TypeView, Templated(view, toData(data)))
}

func (m *Manager) append(bag, typ string, msg Message) int {
	n := m.store.GetOrCreate(bag).Add(typ, msg)
	m.logger.Debug("flash message added",
		logger.Bag(bag),
		logger.MessageType(typ),
		logger.MessageKind(msg.Kind.String()),
		logger.Count(n),
	)
	return n
}

// Set is Add under the name of an index assignment.
func (m *Manager) Set(where string, payload any) int {
	return m.Add(where, payload)
}

// Has reports whether where holds messages. "default.msg" always exists.
func (m *Manager) Has(where string) bool {
	bag, typ := ParseWhere(where)
	if bag == DefaultBag && typ == DefaultType {
		return true
	}
	b, ok := m.store.Lookup(bag)
	return ok && b.Has(typ)
}

// Unset removes every message of the type named by where.
func (m *Manager) Unset(where string) {
	bag, typ := ParseWhere(where)
	if b, ok := m.store.Lookup(bag); ok {
		b.Remove(typ)
	}
}

// Bags returns the bag names in use; "default" is always first.
func (m *Manager) Bags() []string {
	bags := []string{DefaultBag}
	for _, name := range m.store.Names() {
		if name != DefaultBag {
			bags = append(bags, name)
		}
	}
	return bags
}

// Types returns every stored type across all bags, "msg" first.
// With prefixed set, types are reported as "bag.type".
func (m *Manager) Types(prefixed bool) []string {
	first := DefaultType
	if prefixed {
		first = defaultWhere
	}
	types := []string{first}

	for _, name := range m.store.Names() {
		b, _ := m.store.Lookup(name)
		for _, typ := range b.Types() {
			if prefixed {
				typ = JoinWhere(name, typ)
			}
			if !slices.Contains(types, typ) {
				types = append(types, typ)
			}
		}
	}
	return types
}

// BagTypes returns the types stored in bag. The default bag always
// reports "msg" first.
func (m *Manager) BagTypes(bag string) []string {
	types := m.readBag(bag).Types()
	if bag != DefaultBag {
		return types
	}
	out := []string{DefaultType}
	for _, typ := range types {
		if typ != DefaultType {
			out = append(out, typ)
		}
	}
	return out
}

// Messages returns the messages addressed by where ("default.ALL" when
// empty). For an "ALL" specifier every message of the bag is returned in
// type order. Missing bags and types yield nil.
func (m *Manager) Messages(where string) []Message {
	bag, typ := ParseWhere(whereOrAll(where))
	b := m.readBag(bag)
	if typ == TypeAll {
		return b.All()
	}
	return b.Get(typ)
}

// Groups is Messages keeping the type grouping. A single-type specifier
// yields at most one group.
func (m *Manager) Groups(where string) Groups {
	bag, typ := ParseWhere(whereOrAll(where))
	b := m.readBag(bag)
	if typ == TypeAll {
		return b.Groups()
	}
	if !b.Has(typ) {
		return Groups{}
	}
	return Groups{{Type: typ, Messages: b.Get(typ)}}
}

// Snapshot returns the default bag contents grouped by type.
func (m *Manager) Snapshot() Groups {
	return m.Groups(allWhere)
}

// JSON encodes the messages addressed by where. An "ALL" specifier encodes
// an object keyed by type; a single type encodes an array.
func (m *Manager) JSON(where string, opts ...JSONOption) ([]byte, error) {
	bag, typ := ParseWhere(whereOrAll(where))
	b := m.readBag(bag)
	if typ == TypeAll {
		return encodeJSON(b.Groups(), opts...)
	}
	msgs := b.Get(typ)
	if msgs == nil {
		msgs = []Message{}
	}
	return encodeJSON(msgs, opts...)
}

// ToJSON encodes the whole default bag.
func (m *Manager) ToJSON(opts ...JSONOption) ([]byte, error) {
	return m.JSON(allWhere, opts...)
}

// Count returns the number of stored messages across all bags.
func (m *Manager) Count() int {
	return m.store.Count()
}

// Store exposes the underlying message store.
func (m *Manager) Store() *Store {
	return m.store
}

// Settings returns the settings the manager renders with.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// SetTemplate registers view as the override for where.
func (m *Manager) SetTemplate(where, view string) {
	m.settings.SetTemplate(where, view)
}

// UnsetTemplate removes the override registered for where.
func (m *Manager) UnsetTemplate(where string) {
	m.settings.UnsetTemplate(where)
}

// DefaultTemplate returns the fallback format for plain messages.
func (m *Manager) DefaultTemplate() string {
	return m.settings.DefaultTemplate()
}

// BlockSplitter returns the separator placed between rendered blocks.
func (m *Manager) BlockSplitter() string {
	return m.settings.BlockSplitter()
}

// readBag returns the named bag, or a detached empty bag when it does not
// exist. Reads never attach bags to the store.
func (m *Manager) readBag(name string) *Bag {
	if b, ok := m.store.Lookup(name); ok {
		return b
	}
	return NewBag()
}

func whereOrAll(where string) string {
	if where == "" {
		return allWhere
	}
	return where
}

func bagOrDefault(bag string) string {
	if bag == "" {
		return DefaultBag
	}
	return bag
}
