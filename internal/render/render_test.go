package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []KeyValue{{Key: "status", Value: "ok"}}))

	assert.Contains(t, buf.String(), `"key": "status"`)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, table.Row{"ID", "Name"}, []table.Row{
		{"txn_1", "Coffee"},
		{"txn_2", "Rent"},
	})

	out := buf.String()
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "Rent")
}

func TestShortenID(t *testing.T) {
	assert.Equal(t, "txn_1", ShortenID("txn_1"))

	long := "txn_0123456789abcdef0123456789abcdef"
	short := ShortenID(long)
	assert.Contains(t, short, "…")
	assert.True(t, strings.HasPrefix(short, long[:8]))
	assert.True(t, strings.HasSuffix(short, long[len(long)-6:]))
}

func TestOrDash(t *testing.T) {
	v := "x"
	assert.Equal(t, "x", OrDash(&v))
	assert.Equal(t, "-", OrDash(nil))
	empty := ""
	assert.Equal(t, "-", OrDash(&empty))
}
