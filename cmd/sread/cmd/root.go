package cmd

import (
	"github.com/spf13/cobra"
)

var (
	listFlag  bool
	cacheFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "sread <file>:<symbol>",
	Short: "sread — extract a named symbol from a source file",
	Long: `Extract one function, class, method, or interface from a source file by
name, or list every declared symbol. Supports Python, Rust, and the
JavaScript/TypeScript family.

  sread app.py:handler          plain lookup (function, then class, then interface)
  sread app.py:Server.start     method lookup
  sread app.ts:class:Widget     explicit kind (function|func|fn, class, method, interface)
  sread app.rs --list           one "kind: name" line per declaration`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			return runList(cmd, args[0])
		}
		return runExtract(cmd, args[0])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&listFlag, "list", false, "list all declared symbols instead of extracting one")
	rootCmd.Flags().BoolVar(&cacheFlag, "cache", false, "with --list: reuse cached listings for unchanged files")
	rootCmd.AddCommand(watchCmd)
}
