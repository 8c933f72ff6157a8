package schema

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Corpus holds every parsed document plus the global fragment index. All file
// reads and parses happen here, before any draft mutation, so a malformed
// input fails the whole run without leaving a half-built draft behind.
type Corpus struct {
	// Paths preserves the caller's file order for the rendered header.
	Paths     []string
	Documents []*ast.QueryDocument

	// Fragments indexes fragment definitions by name across all documents.
	// Duplicate names keep the last definition parsed.
	Fragments map[string]*ast.FragmentDefinition
}

// LoadDocuments reads and parses every path as a GraphQL query document.
// Any read or parse failure aborts the load and names the offending file.
func LoadDocuments(paths []string) (*Corpus, error) {
	corpus := &Corpus{
		Paths:     append([]string(nil), paths...),
		Fragments: make(map[string]*ast.FragmentDefinition),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", path, err)
		}

		doc, err := parser.ParseQuery(&ast.Source{Name: path, Input: string(data)})
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		corpus.Documents = append(corpus.Documents, doc)

		for _, frag := range doc.Fragments {
			if prev, ok := corpus.Fragments[frag.Name]; ok {
				log.Debug().
					Str("fragment", frag.Name).
					Str("kept", path).
					Str("replaced", prev.Position.Src.Name).
					Msg("duplicate fragment definition, last one wins")
			}
			corpus.Fragments[frag.Name] = frag
		}
	}

	return corpus, nil
}
