// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Engine is the parsing/query engine seam. The concrete implementation
// (tree-sitter) lives in internal/adapters/treesitter.
type Engine interface {
	// Parse builds a syntax tree for source under the named grammar.
	// Unknown grammar names and parse failures are errors; a returned tree
	// must be Closed by the caller.
	Parse(grammar string, source []byte) (SyntaxTree, error)

	// Supports reports whether a grammar is registered.
	Supports(grammar string) bool
}

// SyntaxTree is one parsed source file, ready for pattern evaluation.
// Not safe for concurrent use.
type SyntaxTree interface {
	// Evaluate compiles a structural pattern and runs it over the whole
	// tree, returning matches in the engine's document order. A pattern
	// that fails to compile is an error (an internal defect — patterns are
	// machine-generated, never user input).
	Evaluate(pattern string) ([]Match, error)

	// Close releases the tree and its parser.
	Close()
}

// Match is one pattern match: the set of named captures it bound.
type Match struct {
	Captures []Capture
}

// Capture is a named byte range within the parsed source.
type Capture struct {
	Name  string
	Start uint
	End   uint
}
