package ports

// Watcher monitors a single file for changes. The adapter (fsnotify) must
// debounce rapid events — editors often trigger multiple writes per save —
// and survive the rename-and-replace dance most editors do on save.
type Watcher interface {
	// Watch starts monitoring filePath. onChange is called after each
	// (debounced) modification; it may be invoked from any goroutine.
	Watch(filePath string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
