package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/sread/internal/adapters/boltcache"
	"github.com/corey/sread/internal/adapters/treesitter"
	"github.com/corey/sread/internal/domain/symbol"
	"github.com/corey/sread/internal/ports"
)

// runList prints one "kind: name" line per declared symbol, in result order.
func runList(cmd *cobra.Command, file string) error {
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	symbols, err := listSymbols(file, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range symbols {
		fmt.Fprintf(out, "%s: %s\n", s.Kind, s.Name)
	}
	return nil
}

// listSymbols runs the lister, going through the bbolt cache when --cache
// is set. A broken cache degrades to a plain listing with a warning.
func listSymbols(file string, source []byte) ([]ports.Symbol, error) {
	if !cacheFlag {
		return symbol.NewLister(treesitter.NewEngine()).List(file, source)
	}

	cache, err := openCache()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: listing cache unavailable: %v\n", err)
		return symbol.NewLister(treesitter.NewEngine()).List(file, source)
	}
	defer cache.Close()

	key := file
	if abs, err := filepath.Abs(file); err == nil {
		key = abs
	}
	sum := sha256.Sum256(source)
	hash := hex.EncodeToString(sum[:])

	if symbols, ok, err := cache.GetListing(key, hash); err == nil && ok {
		return symbols, nil
	}

	symbols, err := symbol.NewLister(treesitter.NewEngine()).List(file, source)
	if err != nil {
		return nil, err
	}
	if err := cache.PutListing(key, hash, symbols); err != nil {
		fmt.Fprintf(os.Stderr, "warning: listing cache write failed: %v\n", err)
	}
	return symbols, nil
}

// openCache opens the user-scoped listing cache, creating its directory on
// first use.
func openCache() (ports.Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, "sread")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return boltcache.Open(filepath.Join(dir, "listings.db"))
}
