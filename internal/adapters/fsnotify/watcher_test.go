package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForCallback waits up to timeout for the callback channel to fire.
func waitForCallback(ch <-chan struct{}, timeout time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(testFile, []byte("# original"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 10)
	require.NoError(t, w.Watch(testFile, func() {
		changed <- struct{}{}
	}))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(testFile, []byte("# modified"), 0644))

	assert.True(t, waitForCallback(changed, 2*time.Second), "expected callback for file change")
}

func TestWatcher_DetectsRenameAndReplace(t *testing.T) {
	// Editors save by writing a temp file and renaming it over the target.
	dir := t.TempDir()
	testFile := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(testFile, []byte("# original"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 10)
	require.NoError(t, w.Watch(testFile, func() {
		changed <- struct{}{}
	}))

	time.Sleep(50 * time.Millisecond)

	tmpFile := filepath.Join(dir, ".app.py.tmp")
	require.NoError(t, os.WriteFile(tmpFile, []byte("# replaced"), 0644))
	require.NoError(t, os.Rename(tmpFile, testFile))

	assert.True(t, waitForCallback(changed, 2*time.Second), "expected callback after rename-and-replace")
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(testFile, []byte("# original"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan struct{}, 10)
	require.NoError(t, w.Watch(testFile, func() {
		changed <- struct{}{}
	}))

	time.Sleep(50 * time.Millisecond)

	sibling := filepath.Join(dir, "other.py")
	require.NoError(t, os.WriteFile(sibling, []byte("# sibling"), 0644))

	assert.False(t, waitForCallback(changed, 300*time.Millisecond), "sibling writes must not fire the callback")
}

func TestWatcher_MissingFile(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "absent.py"), func() {})
	assert.Error(t, err)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
