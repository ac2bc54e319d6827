package ports

// Cache persists listing results between invocations. The backing store
// (bbolt) keys entries by file path; a content hash guards against serving
// a listing for a file that has since changed.
type Cache interface {
	// GetListing returns the cached listing for path if one exists and its
	// stored hash equals contentHash. The second return is false on miss.
	GetListing(path, contentHash string) ([]Symbol, bool, error)

	// PutListing stores the listing for path, replacing any prior entry.
	PutListing(path, contentHash string, symbols []Symbol) error

	// Close releases the underlying store. Safe to call once.
	Close() error
}
