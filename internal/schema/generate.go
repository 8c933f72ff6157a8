package schema

// Generate loads every document, walks operations and standalone fragments
// into one shared draft, and renders the result as SDL text. The caller owns
// discovery and ordering of paths and writing the output anywhere.
func Generate(paths []string) (string, error) {
	corpus, err := LoadDocuments(paths)
	if err != nil {
		return "", err
	}

	draft := NewDraft()
	w := newWalker(draft, corpus.Fragments)

	for _, doc := range corpus.Documents {
		for _, op := range doc.Operations {
			w.walkOperation(op)
		}
	}
	w.walkFragments()

	return Render(draft, corpus.Paths), nil
}
