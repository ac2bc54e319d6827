// Package profile maps file extensions to language profiles. A profile names
// the tree-sitter grammar for a language and carries the query templates that
// find its declarations: one template per symbol kind plus a catch-all
// listing query.
//
// Lookup templates capture the whole declaration as @result and its name as
// @match_name; method templates additionally constrain an @owner_name.
// Listing queries tag every name capture "<kind>_name" so the consumer can
// recover the kind from the tag alone.
package profile

import "strings"

// Profile describes one supported source language. Profiles are constructed
// once at init and shared read-only; template funcs are pure.
type Profile struct {
	// Grammar is the engine's grammar name ("python", "rust", ...).
	Grammar string

	// Function, Class and Interface render a lookup query for one name.
	// Interface is nil for languages without an interface concept.
	Function  func(name string) string
	Class     func(name string) string
	Interface func(name string) string

	// Method renders the two-name lookup: member declared lexically inside
	// owner's body.
	Method func(owner, member string) string

	// List matches every recognized declaration shape at once.
	List string
}

var table = map[string]*Profile{}

// register maps extensions (with leading dot, lowercase) to a profile.
func register(p *Profile, exts ...string) {
	for _, ext := range exts {
		table[ext] = p
	}
}

func init() {
	register(pythonProfile, ".py")
	register(rustProfile, ".rs")
	register(typescriptProfile, ".ts", ".mts", ".cts", ".js", ".mjs", ".cjs", ".jsx")
	register(tsxProfile, ".tsx")
}

// For returns the profile for a file extension (leading dot, any case).
// Unknown extensions return false — the file type is unsupported.
func For(ext string) (*Profile, bool) {
	p, ok := table[strings.ToLower(ext)]
	return p, ok
}

// ValidName reports whether s is safe to interpolate into query text as a
// string literal. Names are identifiers drawn from source code; anything
// outside [A-Za-z0-9_$] (dollar for the JS family) is rejected at the
// boundary so query metacharacters never reach the engine.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '$':
		default:
			return false
		}
	}
	return true
}
