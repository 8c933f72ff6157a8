package ops

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestDocuments_AllParse(t *testing.T) {
	// Test plan:
	// - Every embedded .graphql document parses
	// - Every document carries exactly one operation named after its file

	entries, err := fs.ReadDir(Documents, "documents")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			content, err := fs.ReadFile(Documents, filepath.Join("documents", entry.Name()))
			require.NoError(t, err)

			doc, err := parser.ParseQuery(&ast.Source{Name: entry.Name(), Input: string(content)})
			require.NoError(t, err)

			require.Len(t, doc.Operations, 1)
			want := strings.TrimSuffix(entry.Name(), ".graphql")
			assert.Equal(t, want, doc.Operations[0].Name)
		})
	}
}

func TestDocuments_ExportedStringsMatchFiles(t *testing.T) {
	docs := map[string]string{
		"User.graphql":              User,
		"Transactions.graphql":      Transactions,
		"Transaction.graphql":       Transaction,
		"Categories.graphql":        Categories,
		"Tags.graphql":              Tags,
		"Recurrings.graphql":        Recurrings,
		"Budgets.graphql":           Budgets,
		"UpdateTransaction.graphql": UpdateTransaction,
		"CreateCategory.graphql":    CreateCategory,
		"UpdateCategory.graphql":    UpdateCategory,
		"CreateTag.graphql":         CreateTag,
		"DeleteTag.graphql":         DeleteTag,
		"CreateRecurring.graphql":   CreateRecurring,
	}

	for name, content := range docs {
		t.Run(name, func(t *testing.T) {
			embedded, err := fs.ReadFile(Documents, filepath.Join("documents", name))
			require.NoError(t, err)
			assert.Equal(t, string(embedded), content)
		})
	}
}
