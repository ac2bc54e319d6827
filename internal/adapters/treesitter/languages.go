package treesitter

// This file registers the compiled-in grammars. The language table is
// closed: one grammar per profile family, all from official binding
// modules.
//
// To add a language:
// 1. go get github.com/tree-sitter/tree-sitter-{lang}@latest
// 2. Add import + Language() call in registerLanguages()
// 3. Register a profile for its extensions in internal/domain/profile

import (
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ts_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// registerLanguages adds all compiled-in grammars to the engine.
func (e *Engine) registerLanguages() {
	e.addLang("python", langPtr(ts_python.Language()))
	e.addLang("rust", langPtr(ts_rust.Language()))
	e.addLang("typescript", langPtr(ts_typescript.LanguageTypescript()))
	e.addLang("tsx", langPtr(ts_typescript.LanguageTSX()))
}
