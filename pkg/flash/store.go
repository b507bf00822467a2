package flash

// Store maps bag names to message bags.
// The default bag springs into existence on first access; every other bag
// exists only after GetOrCreate.
type Store struct {
	names []string
	bags  map[string]*Bag
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{bags: make(map[string]*Bag)}
}

// GetOrCreate returns the named bag, creating and attaching it when absent.
func (s *Store) GetOrCreate(name string) *Bag {
	if b, ok := s.bags[name]; ok {
		return b
	}
	b := NewBag()
	s.bags[name] = b
	s.names = append(s.names, name)
	return b
}

// Lookup returns the named bag without creating it.
// The default bag is the exception: it is created when missing.
func (s *Store) Lookup(name string) (*Bag, bool) {
	if b, ok := s.bags[name]; ok {
		return b, true
	}
	if name == DefaultBag {
		return s.GetOrCreate(name), true
	}
	return nil, false
}

// Names returns the bag names in creation order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Count returns the number of messages across all bags.
func (s *Store) Count() int {
	n := 0
	for _, b := range s.bags {
		n += b.Len()
	}
	return n
}
