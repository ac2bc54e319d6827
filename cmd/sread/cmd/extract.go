package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/sread/internal/adapters/treesitter"
	"github.com/corey/sread/internal/domain/symbol"
)

// runExtract resolves one symbol and writes its source text verbatim —
// no trailing newline beyond what the declaration itself carries.
func runExtract(cmd *cobra.Command, target string) error {
	file, symText, err := splitTarget(target)
	if err != nil {
		return err
	}
	desc, err := classifySymbol(symText)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	resolver := symbol.NewResolver(treesitter.NewEngine())
	text, err := resolver.Resolve(file, source, desc)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
