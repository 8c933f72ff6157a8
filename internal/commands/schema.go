package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/javisoto/copilot-money-api/internal/schema"
)

// defaultCaptureRoot is where the capture tooling drops recorded operation
// documents, one timestamped directory per recording session.
const defaultCaptureRoot = "artifacts/graphql-ops"

// SchemaGenOptions contains options for the schema gen command.
type SchemaGenOptions struct {
	GraphQLDir string
	Out        string
	Watch      bool
}

// SchemaGen infers an SDL stub from a directory of captured .graphql
// documents and writes it to the output path. With Watch it stays running and
// regenerates whenever the corpus changes.
func (c *Controller) SchemaGen(ctx context.Context, opts SchemaGenOptions) error {
	dir := opts.GraphQLDir
	if dir == "" {
		var err error
		dir, err = newestCaptureDir(defaultCaptureRoot)
		if err != nil {
			return err
		}
	}

	if err := generateSchema(dir, opts.Out); err != nil {
		return err
	}
	log.Info().Str("dir", dir).Str("out", opts.Out).Msg("schema stub written")

	if !opts.Watch {
		return nil
	}

	watcher, err := schema.NewCorpusWatcher(func(path string, op fsnotify.Op) {
		if err := generateSchema(dir, opts.Out); err != nil {
			log.Error().Err(err).Str("changed", path).Msg("failed to regenerate schema")
			return
		}
		log.Info().Str("changed", path).Str("out", opts.Out).Msg("schema stub regenerated")
	})
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.AddDirectory(dir); err != nil {
		return err
	}
	return watcher.Start(ctx)
}

func generateSchema(dir, out string) error {
	paths, err := listGraphQLFiles(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .graphql documents found in %s", dir)
	}

	content, err := schema.Generate(paths)
	if err != nil {
		return err
	}

	if parent := filepath.Dir(out); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// listGraphQLFiles returns the .graphql files directly under dir, sorted so
// the generated header (and any widening order) is stable run to run.
func listGraphQLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".graphql") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// newestCaptureDir picks the lexicographically largest capture session, which
// for timestamped directory names is the most recent one.
func newestCaptureDir(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("no graphql capture dirs found under %s: %w", root, err)
	}

	var best string
	for _, entry := range entries {
		p := filepath.Join(root, entry.Name(), "graphql")
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		if p > best {
			best = p
		}
	}
	if best == "" {
		return "", fmt.Errorf("no graphql capture dirs found under %s", root)
	}
	return best, nil
}
