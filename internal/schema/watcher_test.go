package schema

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusWatcher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Test plan:
	// - Watch a temp directory
	// - Write a .graphql file (should trigger) and a .json file (should not)
	// - Write into a subdirectory created after Start (should trigger)

	tmpDir := t.TempDir()

	var events []string
	var eventsMu sync.Mutex

	onChange := func(path string, op fsnotify.Op) {
		eventsMu.Lock()
		defer eventsMu.Unlock()
		events = append(events, filepath.Base(path))
	}

	cw, err := NewCorpusWatcher(onChange)
	require.NoError(t, err)
	defer cw.Close()

	err = cw.AddDirectory(tmpDir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- cw.Start(ctx)
	}()

	// Give watcher time to start
	time.Sleep(100 * time.Millisecond)

	err = os.WriteFile(filepath.Join(tmpDir, "User.graphql"), []byte("query User { user { id } }"), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(tmpDir, "meta.json"), []byte("{}"), 0644)
	require.NoError(t, err)

	subDir := filepath.Join(tmpDir, "session-2")
	err = os.MkdirAll(subDir, 0755)
	require.NoError(t, err)

	// Give the watcher time to pick up the new directory
	time.Sleep(200 * time.Millisecond)

	err = os.WriteFile(filepath.Join(subDir, "Tags.graphql"), []byte("query Tags { tags { id } }"), 0644)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	eventsMu.Lock()
	defer eventsMu.Unlock()

	seen := make(map[string]bool)
	for _, name := range events {
		seen[name] = true
	}

	assert.True(t, seen["User.graphql"], "Expected event for User.graphql")
	assert.True(t, seen["Tags.graphql"], "Expected event for Tags.graphql in new subdirectory")
	assert.False(t, seen["meta.json"], "Should not have event for meta.json")
}

func TestCorpusWatcher_Close(t *testing.T) {
	cw, err := NewCorpusWatcher(func(string, fsnotify.Op) {})
	require.NoError(t, err)

	err = cw.Close()
	assert.NoError(t, err)
}

func TestCorpusWatcher_StartStopsOnCancel(t *testing.T) {
	cw, err := NewCorpusWatcher(func(string, fsnotify.Op) {})
	require.NoError(t, err)
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- cw.Start(ctx)
	}()

	cancel()

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after context cancellation")
	}
}
