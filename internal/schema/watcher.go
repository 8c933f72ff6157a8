package schema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// CorpusWatcher watches a captured-documents directory and reports changes to
// .graphql files so callers can regenerate the schema stub.
type CorpusWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string, op fsnotify.Op)
}

// NewCorpusWatcher creates a watcher that invokes onChange for every change to
// a .graphql file under the watched directories.
func NewCorpusWatcher(onChange func(path string, op fsnotify.Op)) (*CorpusWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &CorpusWatcher{
		watcher:  watcher,
		onChange: onChange,
	}, nil
}

// AddDirectory recursively adds a directory tree to the watcher.
func (cw *CorpusWatcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := cw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		}
		return nil
	})
}

// Start blocks delivering change events until the context is cancelled.
func (cw *CorpusWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			if strings.HasSuffix(event.Name, ".graphql") {
				cw.onChange(event.Name, event.Op)
			}

			// New capture subdirectories appear while a recording session is
			// running; pick them up as they are created.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = cw.AddDirectory(event.Name)
				}
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}
}

// Close stops the watcher.
func (cw *CorpusWatcher) Close() error {
	return cw.watcher.Close()
}
