package flash

import (
	"maps"
	"sync"
)

// Config holds the rendering configuration of flash messages.
type Config struct {
	// Views maps "bag.type", "type" or "default.type" keys to view names.
	Views map[string]string `env:"FLASH_VIEWS"`

	// ViewsFile is an optional YAML file with additional view overrides.
	// Entries from Views take precedence over the file.
	ViewsFile string `env:"FLASH_VIEWS_FILE"`

	// ViewShare is the data key under which the manager is passed to views.
	ViewShare string `env:"FLASH_VIEW_SHARE" envDefault:"messages"`

	// MsgVariable is the data key holding the message list when a whole
	// type is rendered by one view.
	MsgVariable string `env:"FLASH_MSG_VARIABLE" envDefault:"notifications"`

	// DefaultTemplate formats a plain message when no view applies.
	// It receives the message text, the bag and the type as arguments 1–3.
	DefaultTemplate string `env:"FLASH_DEFAULT_TEMPLATE" envDefault:"<p class=\"%2$s %3$s\">%1$s</p>"`

	// BlockSplitter is placed between rendered blocks.
	BlockSplitter string `env:"FLASH_BLOCK_SPLITTER"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Views:           map[string]string{defaultWhere: ""},
		ViewShare:       "messages",
		MsgVariable:     "notifications",
		DefaultTemplate: `<p class="%2$s %3$s">%1$s</p>`,
	}
}

// Settings is the process-wide, concurrency-safe holder of Config.
// Only the view overrides can change after construction.
type Settings struct {
	mu  sync.RWMutex
	cfg Config
}

// NewSettings wraps cfg. The views map is copied.
func NewSettings(cfg Config) *Settings {
	cfg.Views = maps.Clone(cfg.Views)
	if cfg.Views == nil {
		cfg.Views = make(map[string]string)
	}
	return &Settings{cfg: cfg}
}

// DefaultSettings returns settings built from DefaultConfig.
func DefaultSettings() *Settings {
	return NewSettings(DefaultConfig())
}

// Config returns a snapshot of the current configuration.
func (s *Settings) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.cfg
	cfg.Views = maps.Clone(s.cfg.Views)
	return cfg
}

// Views returns a copy of the view overrides.
func (s *Settings) Views() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.cfg.Views)
}

// SetTemplate registers view as the override for where.
func (s *Settings) SetTemplate(where, view string) {
	s.updateViews(func(views map[string]string) {
		views[where] = view
	})
}

// UnsetTemplate removes the override registered for where.
func (s *Settings) UnsetTemplate(where string) {
	s.updateViews(func(views map[string]string) {
		delete(views, where)
	})
}

// updateViews reads the whole override map, applies fn to a copy and writes
// the copy back, so snapshots handed out earlier never change.
func (s *Settings) updateViews(fn func(map[string]string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := maps.Clone(s.cfg.Views)
	if views == nil {
		views = make(map[string]string)
	}
	fn(views)
	s.cfg.Views = views
}

// override walks the override cascade for bag and typ:
// "bag.type", "type", "default.type", "msg", "default.msg".
// The first key present wins, even when it maps to an empty view.
func (s *Settings) override(bag, typ string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, key := range [...]string{
		JoinWhere(bag, typ),
		typ,
		JoinWhere(DefaultBag, typ),
		DefaultType,
		defaultWhere,
	} {
		if view, ok := s.cfg.Views[key]; ok {
			return view, true
		}
	}
	return "", false
}

func (s *Settings) ViewShare() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ViewShare
}

func (s *Settings) MsgVariable() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.MsgVariable
}

func (s *Settings) DefaultTemplate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.DefaultTemplate
}

func (s *Settings) BlockSplitter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.BlockSplitter
}
