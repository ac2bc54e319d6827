// sread slices source files by symbol name: one declaration in, its exact
// source text out. No compilation, no project context — a single file and a
// name are enough.
package main

import (
	"fmt"
	"os"

	"github.com/corey/sread/cmd/sread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
