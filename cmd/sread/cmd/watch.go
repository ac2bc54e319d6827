package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/sread/internal/adapters/fsnotify"
	"github.com/corey/sread/internal/adapters/treesitter"
	"github.com/corey/sread/internal/domain/symbol"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>:<symbol>",
	Short: "Re-extract a symbol whenever its file changes",
	Long: `Extract the symbol once, then keep watching the file and re-print the
extraction after every save. Resolution errors (symbol temporarily gone
mid-edit, file unparsable) go to stderr and watching continues. Ctrl-C
stops.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	file, symText, err := splitTarget(args[0])
	if err != nil {
		return err
	}
	desc, err := classifySymbol(symText)
	if err != nil {
		return err
	}

	resolver := symbol.NewResolver(treesitter.NewEngine())
	out := cmd.OutOrStdout()

	extract := func() {
		source, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", file, err)
			return
		}
		text, err := resolver.Resolve(file, source, desc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprint(out, text)
		fmt.Fprintln(out)
	}

	// First extraction up front — a target that can never resolve should
	// fail fast instead of waiting for a save.
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	text, err := resolver.Resolve(file, source, desc)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	fmt.Fprintln(out)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Watch(file, extract); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return w.Stop()
}
