// Package boltcache implements the ports.Cache interface using bbolt
// (embedded B+ tree). One bucket holds listing entries keyed by file path;
// each entry stores a content hash next to the JSON-encoded symbols, so a
// stale entry for a changed file reads as a miss. Writes are transactional.
package boltcache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/sread/internal/ports"
)

var bucketListings = []byte("listings")

// entry is the stored form of one listing.
type entry struct {
	Hash    string         `json:"hash"`
	Symbols []ports.Symbol `json:"symbols"`
}

// Cache implements ports.Cache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) a bbolt database at the given path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketListings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Cache{db: db}, nil
}

// GetListing returns the cached listing for path when its stored hash
// matches contentHash. A hash mismatch is a miss, not an error.
func (c *Cache) GetListing(path, contentHash string) ([]ports.Symbol, bool, error) {
	var symbols []ports.Symbol
	found := false

	err := c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketListings).Get([]byte(path))
		if raw == nil {
			return nil
		}
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("decode cache entry for %s: %w", path, err)
		}
		if e.Hash != contentHash {
			return nil
		}
		symbols = e.Symbols
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return symbols, found, nil
}

// PutListing stores the listing for path, replacing any prior entry.
func (c *Cache) PutListing(path, contentHash string, symbols []ports.Symbol) error {
	raw, err := json.Marshal(entry{Hash: contentHash, Symbols: symbols})
	if err != nil {
		return fmt.Errorf("encode cache entry for %s: %w", path, err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketListings).Put([]byte(path), raw)
	})
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
