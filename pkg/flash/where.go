package flash

import (
	"regexp"
	"strings"
)

// Reserved bag and type names.
const (
	// DefaultBag is the bag used when a specifier names none.
	DefaultBag = "default"
	// DefaultType is the type used when a specifier names none.
	DefaultType = "msg"
	// TypeView holds messages added with the "view:" prefix.
	TypeView = "view"
	// TypeSprintf holds messages added with the "sprintf:" prefix.
	TypeSprintf = "sprintf"
	// TypeAll selects every type of a bag in queries. It is never stored.
	TypeAll = "ALL"
)

const (
	defaultWhere = DefaultBag + "." + DefaultType
	allWhere     = DefaultBag + "." + TypeAll
)

var (
	viewPrefix    = regexp.MustCompile(`^(([^.]+\.)?view):(.*)$`)
	sprintfPrefix = regexp.MustCompile(`^(([^.]+\.)?sprintf):(.*)$`)
)

// ParseWhere splits a "bag.type" specifier.
// A specifier without a dot names a type in the default bag, and an empty
// type becomes "msg":
//
//	ParseWhere("warning")        // "default", "warning"
//	ParseWhere("billing.unpaid") // "billing", "unpaid"
//	ParseWhere("billing.")       // "billing", "msg"
//	ParseWhere("")               // "default", "msg"
func ParseWhere(where string) (bag, typ string) {
	if !strings.Contains(where, ".") {
		where = DefaultBag + "." + where
	}
	bag, typ, _ = strings.Cut(where, ".")
	if typ == "" {
		typ = DefaultType
	}
	return bag, typ
}

// JoinWhere builds a "bag.type" specifier.
func JoinWhere(bag, typ string) string {
	return bag + "." + typ
}

// resolveMode recognises the "[bag.]view:" and "[bag.]sprintf:" prefixes.
// On a match the returned specifier names the mode type and the payload is
// reshaped into the mode's message; otherwise where is returned unchanged and
// the payload becomes a plain message. A single trailing newline is ignored
// when matching a prefix.
func resolveMode(where string, payload any) (string, Message) {
	spec, msg, matched := where, Message{}, false
	line := strings.TrimSuffix(where, "\n")

	if m := viewPrefix.FindStringSubmatch(line); m != nil {
		spec, msg, matched = m[1], Templated(m[3], toData(payload)), true
	}
	if m := sprintfPrefix.FindStringSubmatch(line); m != nil {
		spec, msg, matched = m[1], Formatted(m[3], toArgs(payload)...), true
	}

	if !matched {
		msg = toMessage(payload)
	}
	return spec, msg
}
