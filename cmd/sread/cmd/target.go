package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/sread/internal/domain/symbol"
)

// knownExts anchor the file/symbol split. Searching for "<ext>:" instead of
// splitting on the last colon keeps Windows paths (C:\...) unambiguous.
var knownExts = []string{
	".py:", ".rs:",
	".ts:", ".tsx:", ".mts:", ".cts:",
	".js:", ".jsx:", ".mjs:", ".cjs:",
}

// splitTarget splits "<file>:<symbol>" on the first known extension
// followed by a colon.
func splitTarget(input string) (file, sym string, err error) {
	for _, ext := range knownExts {
		pos := strings.Index(input, ext)
		if pos < 0 {
			continue
		}
		colon := pos + len(ext) - 1
		if rest := input[colon+1:]; rest != "" {
			return input[:colon], rest, nil
		}
	}
	return "", "", fmt.Errorf("invalid target %q: use <file>:<symbol> or <file>:<type>:<name>", input)
}

// classifySymbol turns raw symbol text into a lookup descriptor. A
// recognized "<type>:" prefix pins the kind; an unrecognized prefix means
// the whole text is taken as a plain symbol string.
func classifySymbol(text string) (symbol.Descriptor, error) {
	if kindWord, rest, ok := strings.Cut(text, ":"); ok {
		switch kindWord {
		case "function", "func", "fn":
			return symbol.Descriptor{Kind: symbol.KindFunction, Name: rest}, nil
		case "class":
			return symbol.Descriptor{Kind: symbol.KindClass, Name: rest}, nil
		case "interface":
			return symbol.Descriptor{Kind: symbol.KindInterface, Name: rest}, nil
		case "method":
			desc := symbol.ParseDescriptor(rest)
			if desc.Kind != symbol.KindMethod {
				return symbol.Descriptor{}, fmt.Errorf("method lookup needs <Owner>.<member>, got %q", rest)
			}
			return desc, nil
		}
	}
	return symbol.ParseDescriptor(text), nil
}
