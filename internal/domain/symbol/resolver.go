package symbol

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/corey/sread/internal/domain/profile"
	"github.com/corey/sread/internal/ports"
)

// Resolver extracts the source text of one named declaration. Stateless
// beyond the engine handle; one Resolve call handles one request.
type Resolver struct {
	engine ports.Engine
}

// NewResolver creates a resolver backed by the given parsing engine.
func NewResolver(engine ports.Engine) *Resolver {
	return &Resolver{engine: engine}
}

// Resolve returns the exact source substring of the declaration named by
// desc: no reformatting, no trailing newline added. path selects the
// language (by extension only); source is the file's content.
//
// Selection is single-winner: the first match in the engine's document
// order wins, with no scoring. Plain-name lookups try kinds in
// fallbackOrder and keep the first kind that matches at all.
func (r *Resolver) Resolve(path string, source []byte, desc Descriptor) (string, error) {
	prof, ok := profile.For(filepath.Ext(path))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}

	if err := checkNames(desc); err != nil {
		return "", err
	}

	tree, err := r.engine.Parse(prof.Grammar, source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer tree.Close()

	if desc.Kind == KindMethod {
		return r.resolveMethod(prof, tree, source, desc.Owner, desc.Name)
	}

	if desc.Kind != "" {
		return r.resolveKind(prof, tree, source, desc.Name, desc.Kind)
	}

	for _, kind := range fallbackOrder {
		text, err := r.resolveKind(prof, tree, source, desc.Name, kind)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrSymbolNotFound) || errors.Is(err, ErrInterfaceNotSupported) {
			continue
		}
		return "", err
	}
	return "", fmt.Errorf("%w: %s", ErrSymbolNotFound, desc.Name)
}

// resolveKind evaluates one kind's pattern and returns the first winner.
func (r *Resolver) resolveKind(prof *profile.Profile, tree ports.SyntaxTree, source []byte, name string, kind Kind) (string, error) {
	var pattern string
	switch kind {
	case KindFunction:
		pattern = prof.Function(name)
	case KindClass:
		pattern = prof.Class(name)
	case KindInterface:
		if prof.Interface == nil {
			return "", fmt.Errorf("%w (%s)", ErrInterfaceNotSupported, prof.Grammar)
		}
		pattern = prof.Interface(name)
	default:
		return "", fmt.Errorf("unknown symbol kind %q", kind)
	}

	text, found, err := firstResult(tree, source, pattern)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return text, nil
}

func (r *Resolver) resolveMethod(prof *profile.Profile, tree ports.SyntaxTree, source []byte, owner, member string) (string, error) {
	text, found, err := firstResult(tree, source, prof.Method(owner, member))
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s.%s", ErrMethodNotFound, owner, member)
	}
	return text, nil
}

// firstResult evaluates pattern and returns the source text of the first
// @result capture, in the engine's document order.
func firstResult(tree ports.SyntaxTree, source []byte, pattern string) (string, bool, error) {
	matches, err := tree.Evaluate(pattern)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrQueryCompile, err)
	}
	for _, m := range matches {
		for _, c := range m.Captures {
			if c.Name == "result" {
				return string(source[c.Start:c.End]), true, nil
			}
		}
	}
	return "", false, nil
}

// checkNames rejects names that could never match an identifier before any
// query text is built. This is the injection boundary the pattern templates
// rely on.
func checkNames(desc Descriptor) error {
	if !profile.ValidName(desc.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbolName, desc.Name)
	}
	if desc.Kind == KindMethod && !profile.ValidName(desc.Owner) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbolName, desc.Owner)
	}
	return nil
}
