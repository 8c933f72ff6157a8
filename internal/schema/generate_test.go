package schema

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocs(t *testing.T, docs map[string]string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(docs))
	for name, content := range docs {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		paths = append(paths, p)
	}
	// stable input order for the header
	sort.Strings(paths)
	return paths
}

// body strips the source-path header so outputs from different file orders can
// be compared.
func body(sdl string) string {
	_, rest, _ := strings.Cut(sdl, "\n\n")
	return rest
}

func TestGenerate_FragmentTypeFields(t *testing.T) {
	// Test plan:
	// - A fragment spread types the field as the fragment's type condition
	// - The fragment's fields land on that type with leaf scalars inferred

	paths := writeDocs(t, map[string]string{
		"a.graphql": `
query Q { thing { ...ThingFields } }
fragment ThingFields on Thing { id name }
`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "type Thing {")
	assert.Contains(t, sdl, "  id: ID!\n")
	assert.Contains(t, sdl, "  name: String\n")
	assert.Contains(t, sdl, "  thing: Thing\n")
}

func TestGenerate_MutationAndArguments(t *testing.T) {
	// Test plan:
	// - A non-empty Mutation adds the mutation clause to the schema line
	// - Variable-typed arguments resolve to the declared type, wrapping intact
	// - Non-builtin variable types become input stubs

	paths := writeDocs(t, map[string]string{
		"transactions.graphql": `
query Q($first: Int!, $after: String) {
  transactions(first: $first, after: $after) { edges { node { id } } }
}
`,
		"delete_tag.graphql": `
mutation M($id: ID!, $input: TagInput) { deleteTag(id: $id) }
`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "schema { query: Query mutation: Mutation }")
	assert.Contains(t, sdl, "type Mutation {")
	assert.Contains(t, sdl, "  deleteTag(id: ID!): JSON\n")
	assert.Contains(t, sdl, "  transactions(after: String, first: Int!): QueryTransactions\n")
	assert.Contains(t, sdl, "type QueryTransactions {")
	assert.Contains(t, sdl, "  edges: QueryTransactionsEdges\n")
	assert.Contains(t, sdl, "input TagInput {\n  _stub: JSON\n}")
}

func TestGenerate_OpaqueVariableTypeIsNotAnInputStub(t *testing.T) {
	// A variable declared as the opaque scalar must not also render as an
	// input stub; the scalar declaration already covers it.

	paths := writeDocs(t, map[string]string{
		"m.graphql": `mutation M($input: JSON) { updateThing(input: $input) }`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "scalar JSON\n")
	assert.NotContains(t, sdl, "input JSON")
}

func TestGenerate_StandaloneFragment(t *testing.T) {
	// Test plan:
	// - A fragment never spread by any operation still describes its type

	paths := writeDocs(t, map[string]string{
		"icon.graphql": `fragment IconFields on EmojiUnicode { __typename unicode }`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "type EmojiUnicode {")
	assert.Contains(t, sdl, "  unicode: JSON\n")
	assert.NotContains(t, sdl, "__typename")
}

func TestGenerate_UnionFromInlineFragments(t *testing.T) {
	// Test plan:
	// - Inline fragments under a field synthesize a named union
	// - Every type condition becomes both a member and a standalone object
	// - Member fields attach to the member type only

	paths := writeDocs(t, map[string]string{
		"icon.graphql": `
query Icon {
  category {
    icon {
      __typename
      ... on EmojiIcon { unicode }
      ... on ImageIcon { url }
    }
  }
}
`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "union QueryCategoryIconUnion = EmojiIcon | ImageIcon")
	assert.Contains(t, sdl, "  icon: QueryCategoryIconUnion\n")
	assert.Contains(t, sdl, "type EmojiIcon {")
	assert.Contains(t, sdl, "  unicode: JSON\n")
	assert.Contains(t, sdl, "type ImageIcon {")
	assert.Contains(t, sdl, "  url: JSON\n")
}

func TestGenerate_UnionMembersAccumulateAcrossDocuments(t *testing.T) {
	// Repeat visits to the same (parent, field) reuse the union and only add
	// members.

	paths := writeDocs(t, map[string]string{
		"a.graphql": `query A { category { icon { ... on EmojiIcon { unicode } } } }`,
		"b.graphql": `query B { category { icon { ... on ImageIcon { url } } } }`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "union QueryCategoryIconUnion = EmojiIcon | ImageIcon")
}

func TestGenerate_ConflictWidening(t *testing.T) {
	// Test plan:
	// - The same field observed as an object in one document and a leaf in
	//   another widens to the opaque scalar

	paths := writeDocs(t, map[string]string{
		"a.graphql": `query A { thing { id } }`,
		"b.graphql": `query B { thing }`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "  thing: JSON\n")
}

func TestGenerate_OrderIndependence(t *testing.T) {
	// Test plan:
	// - Any processing order of the same documents yields identical type
	//   sections; only the header lists files in input order

	docs := map[string]string{
		"a.graphql": `query A { thing { id } transactions(first: 10) { edges { node { id name } } } }`,
		"b.graphql": `query B { thing } fragment Extra on Thing { notes }`,
	}
	paths := writeDocs(t, docs)

	forward, err := Generate(paths)
	require.NoError(t, err)

	reversed := []string{paths[1], paths[0]}
	backward, err := Generate(reversed)
	require.NoError(t, err)

	assert.Equal(t, body(forward), body(backward))
}

func TestGenerate_Idempotence(t *testing.T) {
	paths := writeDocs(t, map[string]string{
		"a.graphql": `query Q { transactions(first: 5) { edges { cursor node { id } } } }`,
	})

	corpus, err := LoadDocuments(paths)
	require.NoError(t, err)

	draft := NewDraft()
	w := newWalker(draft, corpus.Fragments)
	for _, doc := range corpus.Documents {
		for _, op := range doc.Operations {
			w.walkOperation(op)
		}
	}
	w.walkFragments()

	first := Render(draft, corpus.Paths)
	second := Render(draft, corpus.Paths)
	assert.Equal(t, first, second)
}

func TestGenerate_FragmentSpreadAppliesToBothContexts(t *testing.T) {
	// A fragment spread under two different parent fields duplicates its
	// fields into each call-site type as well as its own type condition.

	paths := writeDocs(t, map[string]string{
		"q.graphql": `
query Q {
  current { ...AccountFields extra }
  other { ...AccountFields }
}
fragment AccountFields on Account { id balance }
`,
	})

	sdl, err := Generate(paths)
	require.NoError(t, err)

	assert.Contains(t, sdl, "type Account {")
	// call-site context: current resolves to Account (single spread type) but
	// picks up the extra field alongside the fragment's own
	assert.Contains(t, sdl, "  balance: JSON\n")
	assert.Contains(t, sdl, "  extra: JSON\n")
	assert.Contains(t, sdl, "  other: Account\n")
}

func TestLoadDocuments_ReadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.graphql")

	_, err := LoadDocuments([]string{missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestLoadDocuments_ParseFailure(t *testing.T) {
	paths := writeDocs(t, map[string]string{
		"bad.graphql": `query Q { thing `,
	})

	_, err := LoadDocuments(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), paths[0])
}

func TestLoadDocuments_DuplicateFragmentLastWins(t *testing.T) {
	paths := writeDocs(t, map[string]string{
		"a.graphql": `fragment ThingFields on Thing { id }`,
		"b.graphql": `fragment ThingFields on Thing { notes }`,
	})

	corpus, err := LoadDocuments(paths)
	require.NoError(t, err)

	frag, ok := corpus.Fragments["ThingFields"]
	require.True(t, ok)
	require.Len(t, frag.SelectionSet, 1)
}
