package flash

import "slices"

// Bag is an ordered collection of messages grouped by type.
// Types keep the order in which they were first added and a type without
// messages is absent. A Bag is not safe for concurrent use.
type Bag struct {
	types    []string
	messages map[string][]Message
}

// NewBag creates an empty message bag.
func NewBag() *Bag {
	return &Bag{messages: make(map[string][]Message)}
}

// Add appends msg under typ and returns the number of messages now stored
// under that type.
func (b *Bag) Add(typ string, msg Message) int {
	if _, ok := b.messages[typ]; !ok {
		b.types = append(b.types, typ)
	}
	b.messages[typ] = append(b.messages[typ], msg)
	return len(b.messages[typ])
}

// Get returns the messages stored under typ, or nil.
func (b *Bag) Get(typ string) []Message {
	return slices.Clone(b.messages[typ])
}

// Has reports whether typ holds at least one message.
func (b *Bag) Has(typ string) bool {
	_, ok := b.messages[typ]
	return ok
}

// Remove drops every message of typ. It reports whether anything was removed.
func (b *Bag) Remove(typ string) bool {
	if _, ok := b.messages[typ]; !ok {
		return false
	}
	delete(b.messages, typ)
	b.types = slices.DeleteFunc(b.types, func(t string) bool { return t == typ })
	return true
}

// Types returns the stored types in insertion order.
func (b *Bag) Types() []string {
	return slices.Clone(b.types)
}

// All returns every message, grouped by type in insertion order.
func (b *Bag) All() []Message {
	all := make([]Message, 0, b.Len())
	for _, typ := range b.types {
		all = append(all, b.messages[typ]...)
	}
	return all
}

// Groups returns the bag contents as type groups in insertion order.
func (b *Bag) Groups() Groups {
	groups := make(Groups, 0, len(b.types))
	for _, typ := range b.types {
		groups = append(groups, Group{Type: typ, Messages: slices.Clone(b.messages[typ])})
	}
	return groups
}

// Len returns the total number of messages.
func (b *Bag) Len() int {
	n := 0
	for _, msgs := range b.messages {
		n += len(msgs)
	}
	return n
}

// IsEmpty reports whether the bag holds no messages.
func (b *Bag) IsEmpty() bool {
	return len(b.types) == 0
}
