package cmd

import (
	"errors"

	"github.com/corey/sread/internal/domain/symbol"
)

// ExitCode maps an error to the process exit code:
// 0 success, 1 symbol/method not found, 2 everything else (usage error,
// unreadable file, unsupported file type, invalid symbol name).
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, symbol.ErrSymbolNotFound), errors.Is(err, symbol.ErrMethodNotFound):
		return 1
	default:
		return 2
	}
}
