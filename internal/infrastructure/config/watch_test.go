package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "physics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 20.0\n"), 0644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 25.0\n"), 0644))

	select {
	case changed := <-w.Events:
		assert.Equal(t, path, changed)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for yaml write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0644))

	select {
	case changed := <-w.Events:
		t.Fatalf("unexpected event for %s", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
