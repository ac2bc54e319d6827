// Package symbol resolves a named program element inside one parsed source
// file, or lists every declared element. It owns no I/O: callers hand it a
// file path (for language detection only) and the source bytes, and it talks
// to the parsing engine through ports.Engine.
package symbol

import "strings"

// Kind selects which declaration shape a lookup targets.
type Kind string

const (
	KindFunction  Kind = "function"
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindMethod    Kind = "method"
)

// fallbackOrder is the fixed precedence for kind-unspecified lookups. The
// first kind whose pattern matches at all wins.
var fallbackOrder = []Kind{KindFunction, KindClass, KindInterface}

// Descriptor is a classified lookup target.
//
// Kind == ""          plain name, resolved by fallback order
// Kind == KindMethod  Owner + Name, method lookup only
// any other Kind      explicit kind, that kind only
type Descriptor struct {
	Kind  Kind
	Name  string
	Owner string
}

// ParseDescriptor classifies raw symbol text. Text that a dot splits into
// exactly two non-empty parts is a method lookup; everything else is a plain
// name. Dotted form always takes precedence over fallback search.
func ParseDescriptor(text string) Descriptor {
	if strings.Contains(text, ".") {
		parts := strings.Split(text, ".")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return Descriptor{Kind: KindMethod, Owner: parts[0], Name: parts[1]}
		}
	}
	return Descriptor{Name: text}
}
