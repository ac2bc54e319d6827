// Package treesitter implements ports.Engine on the official tree-sitter
// Go bindings. Grammars compile into the binary via CGo; the engine is a
// fixed map from grammar name to language, plus parse and query evaluation.
package treesitter

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/sread/internal/ports"
)

// Engine holds the registered grammars. Safe for concurrent Parse calls;
// each call gets its own parser.
type Engine struct {
	languages map[string]*tree_sitter.Language
}

// NewEngine creates an engine with all built-in grammars registered.
func NewEngine() *Engine {
	e := &Engine{languages: make(map[string]*tree_sitter.Language)}
	e.registerLanguages()
	return e
}

// addLang registers a language by grammar name.
func (e *Engine) addLang(name string, lang *tree_sitter.Language) {
	if lang != nil {
		e.languages[name] = lang
	}
}

// Supports reports whether a grammar is registered.
func (e *Engine) Supports(grammar string) bool {
	_, ok := e.languages[grammar]
	return ok
}

// Parse builds a syntax tree for source under the named grammar. The
// returned tree owns its parser; callers must Close it.
func (e *Engine) Parse(grammar string, source []byte) (ports.SyntaxTree, error) {
	lang, ok := e.languages[grammar]
	if !ok {
		return nil, fmt.Errorf("unknown grammar: %s", grammar)
	}

	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		parser.Close()
		return nil, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		parser.Close()
		return nil, fmt.Errorf("parse produced no tree (%s)", grammar)
	}

	return &syntaxTree{parser: parser, tree: tree, lang: lang, source: source}, nil
}

// syntaxTree implements ports.SyntaxTree over one parsed file. The parser
// stays alive with the tree; both are released on Close.
type syntaxTree struct {
	parser *tree_sitter.Parser
	tree   *tree_sitter.Tree
	lang   *tree_sitter.Language
	source []byte
}

// Evaluate compiles pattern, runs a query cursor over the whole tree, and
// returns matches in cursor order. Text predicates (#eq? and friends) are
// applied by the bindings against the original source bytes.
func (t *syntaxTree) Evaluate(pattern string) ([]ports.Match, error) {
	query, qErr := tree_sitter.NewQuery(t.lang, pattern)
	if qErr != nil {
		return nil, fmt.Errorf("compile query: %s", qErr.Message)
	}
	defer query.Close()

	names := query.CaptureNames()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	var out []ports.Match
	matches := cursor.Matches(query, t.tree.RootNode(), t.source)
	for m := matches.Next(); m != nil; m = matches.Next() {
		pm := ports.Match{Captures: make([]ports.Capture, 0, len(m.Captures))}
		for _, c := range m.Captures {
			pm.Captures = append(pm.Captures, ports.Capture{
				Name:  names[c.Index],
				Start: uint(c.Node.StartByte()),
				End:   uint(c.Node.EndByte()),
			})
		}
		out = append(out, pm)
	}
	return out, nil
}

func (t *syntaxTree) Close() {
	t.tree.Close()
	t.parser.Close()
}
