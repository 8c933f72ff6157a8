package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestSchemaGen_WritesStub(t *testing.T) {
	// Test plan:
	// - Generate from a directory with two documents
	// - Output file exists and contains the inferred types

	dir := t.TempDir()
	writeDoc(t, dir, "User.graphql", `query User {
  user {
    id
    name
  }
}`)
	writeDoc(t, dir, "CreateTag.graphql", `mutation CreateTag($name: String!) {
  createTag(name: $name) {
    id
    name
  }
}`)

	out := filepath.Join(t.TempDir(), "schema", "schema.graphql")

	ctrl := &Controller{Flags: &Flags{Output: "table"}, Out: &bytes.Buffer{}}
	err := ctrl.SchemaGen(context.Background(), SchemaGenOptions{GraphQLDir: dir, Out: out})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	sdl := string(content)
	assert.Contains(t, sdl, "schema { query: Query mutation: Mutation }")
	assert.Contains(t, sdl, "user: QueryUser")
	assert.Contains(t, sdl, "createTag(name: String!): MutationCreateTag")
	assert.Contains(t, sdl, "type QueryUser {")
}

func TestSchemaGen_EmptyDirFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "schema.graphql")

	ctrl := &Controller{Flags: &Flags{Output: "table"}, Out: &bytes.Buffer{}}
	err := ctrl.SchemaGen(context.Background(), SchemaGenOptions{GraphQLDir: dir, Out: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .graphql documents")
}

func TestListGraphQLFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.graphql", "query B { b { id } }")
	writeDoc(t, dir, "a.graphql", "query A { a { id } }")
	writeDoc(t, dir, "notes.txt", "not a document")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))

	paths, err := listGraphQLFiles(dir)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.graphql"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.graphql"), paths[1])
}

func TestNewestCaptureDir(t *testing.T) {
	root := t.TempDir()
	older := filepath.Join(root, "2024-05-01T10-00-00", "graphql")
	newer := filepath.Join(root, "2024-06-15T09-30-00", "graphql")
	require.NoError(t, os.MkdirAll(older, 0755))
	require.NoError(t, os.MkdirAll(newer, 0755))
	// A session directory without a graphql subdir is skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024-07-01T00-00-00"), 0755))

	got, err := newestCaptureDir(root)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestNewestCaptureDir_Missing(t *testing.T) {
	_, err := newestCaptureDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no graphql capture dirs")
}
