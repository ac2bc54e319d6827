package symbol

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/corey/sread/internal/domain/profile"
	"github.com/corey/sread/internal/ports"
)

// Lister enumerates every declared element in one source file.
type Lister struct {
	engine ports.Engine
}

// NewLister creates a lister backed by the given parsing engine.
func NewLister(engine ports.Engine) *Lister {
	return &Lister{engine: engine}
}

// List evaluates the language's catch-all listing query once and collects
// every capture tagged "<kind>_name". The result keeps first-seen order and
// contains each (name, kind) pair once — overlapping query alternatives can
// bind the same declaration more than once, and later duplicates are
// silently dropped.
func (l *Lister) List(path string, source []byte) ([]ports.Symbol, error) {
	prof, ok := profile.For(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}

	tree, err := l.engine.Parse(prof.Grammar, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer tree.Close()

	matches, err := tree.Evaluate(prof.List)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryCompile, err)
	}

	var symbols []ports.Symbol
	seen := make(map[ports.Symbol]struct{})
	for _, m := range matches {
		for _, c := range m.Captures {
			if !strings.HasSuffix(c.Name, "_name") {
				continue
			}
			sym := ports.Symbol{
				Name: string(source[c.Start:c.End]),
				Kind: strings.TrimSuffix(c.Name, "_name"),
			}
			if _, dup := seen[sym]; dup {
				continue
			}
			seen[sym] = struct{}{}
			symbols = append(symbols, sym)
		}
	}
	return symbols, nil
}
