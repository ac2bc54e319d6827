package symbol

import "errors"

// Resolution failures. All are terminal for the current request; callers
// classify with errors.Is and map to exit codes at the CLI boundary.
var (
	// ErrUnsupportedFileType — extension has no registered profile.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrParseFailure — the engine could not build a syntax tree.
	ErrParseFailure = errors.New("failed to parse")

	// ErrQueryCompile — the engine rejected a generated pattern. Always an
	// internal defect: patterns come from profile templates, never users.
	ErrQueryCompile = errors.New("query compile error")

	// ErrSymbolNotFound — plain or typed lookup exhausted every applicable
	// kind with no match.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrMethodNotFound — dotted Owner.member lookup produced no match.
	ErrMethodNotFound = errors.New("method not found")

	// ErrInterfaceNotSupported — interface lookup on a language without
	// interfaces (Python).
	ErrInterfaceNotSupported = errors.New("language has no interfaces")

	// ErrInvalidSymbolName — a requested name contains non-identifier
	// characters and could never match a declaration.
	ErrInvalidSymbolName = errors.New("invalid symbol name")
)
