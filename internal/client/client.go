// Package client executes the captured GraphQL operations against the Copilot
// Money API. It speaks the plain POST /api/graphql envelope; there is no
// published schema, so requests send the embedded documents verbatim.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/javisoto/copilot-money-api/internal/ops"
)

// Client talks to the Copilot Money GraphQL API, either over HTTP or from a
// directory of recorded response fixtures (one {Operation}.json per
// operation). Fixtures are what the tests and --fixtures-dir use.
type Client struct {
	baseURL     string
	token       string
	httpClient  *http.Client
	fixturesDir string
}

// New creates an HTTP-backed client. If httpClient is nil,
// http.DefaultClient is used. token may be empty for unauthenticated probes.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// NewFixtures creates a client that reads responses from dir instead of the
// network.
func NewFixtures(dir string) *Client {
	return &Client{fixturesDir: dir}
}

type graphqlError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

func (c *Client) graphql(ctx context.Context, operationName, query string, variables map[string]any) (json.RawMessage, error) {
	if c.fixturesDir != "" {
		return c.graphqlFixture(operationName)
	}

	body, err := json.Marshal(map[string]any{
		"operationName": operationName,
		"query":         query,
		"variables":     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", operationName, err)
	}

	url := c.baseURL + "/api/graphql"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operationName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", operationName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operationName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("graphql http error %s: %s", resp.Status, respBody)
	}

	return decodeEnvelope(operationName, respBody)
}

func (c *Client) graphqlFixture(operationName string) (json.RawMessage, error) {
	path := filepath.Join(c.fixturesDir, operationName+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return decodeEnvelope(operationName, data)
}

func decodeEnvelope(operationName string, body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", operationName, err)
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			msgs[i] = e.Message
		}
		return nil, fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}
	return env.Data, nil
}

// User fetches the authenticated user. Also used as the cheapest possible
// token-validity probe.
func (c *Client) User(ctx context.Context) (*User, error) {
	data, err := c.graphql(ctx, "User", ops.User, map[string]any{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected User response shape: %w", err)
	}
	if payload.User == nil {
		return nil, fmt.Errorf("unexpected User response shape: missing user")
	}
	return payload.User, nil
}

// ListTransactions returns the newest transactions, up to limit.
func (c *Client) ListTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	return c.transactions(ctx, map[string]any{
		"first":  limit,
		"after":  nil,
		"filter": nil,
		"sort":   nil,
	})
}

// SearchTransactions returns transactions matching the free-text search.
func (c *Client) SearchTransactions(ctx context.Context, search string, limit int) ([]Transaction, error) {
	return c.transactions(ctx, map[string]any{
		"first":  limit,
		"after":  nil,
		"filter": map[string]any{"search": search},
		"sort":   nil,
	})
}

func (c *Client) transactions(ctx context.Context, variables map[string]any) ([]Transaction, error) {
	data, err := c.graphql(ctx, "Transactions", ops.Transactions, variables)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transactions struct {
			Edges []struct {
				Node Transaction `json:"node"`
			} `json:"edges"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Transactions response shape: %w", err)
	}

	out := make([]Transaction, 0, len(payload.Transactions.Edges))
	for _, edge := range payload.Transactions.Edges {
		out = append(out, edge.Node)
	}
	return out, nil
}

// Transaction fetches a single transaction by ID.
func (c *Client) Transaction(ctx context.Context, id string) (*Transaction, error) {
	data, err := c.graphql(ctx, "Transaction", ops.Transaction, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Transaction *Transaction `json:"transaction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Transaction response shape: %w", err)
	}
	if payload.Transaction == nil {
		return nil, fmt.Errorf("transaction %s not found", id)
	}
	return payload.Transaction, nil
}

// SetTransactionReviewed marks a transaction reviewed or unreviewed.
func (c *Client) SetTransactionReviewed(ctx context.Context, id string, reviewed bool) (*Transaction, error) {
	return c.updateTransaction(ctx, id, map[string]any{"isReviewed": reviewed})
}

// SetTransactionCategory moves a transaction to another category.
func (c *Client) SetTransactionCategory(ctx context.Context, id, categoryID string) (*Transaction, error) {
	return c.updateTransaction(ctx, id, map[string]any{"categoryId": categoryID})
}

// SetTransactionNotes replaces a transaction's notes.
func (c *Client) SetTransactionNotes(ctx context.Context, id, notes string) (*Transaction, error) {
	return c.updateTransaction(ctx, id, map[string]any{"notes": notes})
}

func (c *Client) updateTransaction(ctx context.Context, id string, input map[string]any) (*Transaction, error) {
	data, err := c.graphql(ctx, "UpdateTransaction", ops.UpdateTransaction, map[string]any{
		"id":    id,
		"input": input,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		UpdateTransaction *Transaction `json:"updateTransaction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected UpdateTransaction response shape: %w", err)
	}
	return payload.UpdateTransaction, nil
}

// ListCategories returns all spending categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	data, err := c.graphql(ctx, "Categories", ops.Categories, map[string]any{
		"spend":     false,
		"budget":    false,
		"rollovers": false,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Categories response shape: %w", err)
	}
	return payload.Categories, nil
}

// CreateCategory creates a category; group is optional.
func (c *Client) CreateCategory(ctx context.Context, name string, group *string) (*Category, error) {
	input := map[string]any{"name": name}
	if group != nil {
		input["group"] = *group
	}

	data, err := c.graphql(ctx, "CreateCategory", ops.CreateCategory, map[string]any{"input": input})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CreateCategory *Category `json:"createCategory"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected CreateCategory response shape: %w", err)
	}
	return payload.CreateCategory, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*Category, error) {
	data, err := c.graphql(ctx, "UpdateCategory", ops.UpdateCategory, map[string]any{
		"id":    id,
		"input": map[string]any{"name": name},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		UpdateCategory *Category `json:"updateCategory"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected UpdateCategory response shape: %w", err)
	}
	return payload.UpdateCategory, nil
}

// ListTags returns all tags.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	data, err := c.graphql(ctx, "Tags", ops.Tags, map[string]any{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Tags []Tag `json:"tags"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Tags response shape: %w", err)
	}
	return payload.Tags, nil
}

// CreateTag creates a tag; color is optional.
func (c *Client) CreateTag(ctx context.Context, name string, color *string) (*Tag, error) {
	variables := map[string]any{"name": name}
	if color != nil {
		variables["color"] = *color
	}

	data, err := c.graphql(ctx, "CreateTag", ops.CreateTag, variables)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CreateTag *Tag `json:"createTag"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected CreateTag response shape: %w", err)
	}
	return payload.CreateTag, nil
}

// DeleteTag deletes a tag by ID.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	_, err := c.graphql(ctx, "DeleteTag", ops.DeleteTag, map[string]any{"id": id})
	return err
}

// ListRecurrings returns all recurring payments.
func (c *Client) ListRecurrings(ctx context.Context) ([]Recurring, error) {
	data, err := c.graphql(ctx, "Recurrings", ops.Recurrings, map[string]any{"filter": nil})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recurrings []Recurring `json:"recurrings"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Recurrings response shape: %w", err)
	}
	return payload.Recurrings, nil
}

// CreateRecurring creates a recurring payment.
func (c *Client) CreateRecurring(ctx context.Context, name, frequency string) (*Recurring, error) {
	data, err := c.graphql(ctx, "CreateRecurring", ops.CreateRecurring, map[string]any{
		"input": map[string]any{"name": name, "frequency": frequency},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CreateRecurring *Recurring `json:"createRecurring"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected CreateRecurring response shape: %w", err)
	}
	return payload.CreateRecurring, nil
}

// ListBudgetMonths returns the per-month budget history. Amounts come back as
// raw JSON text since the API is inconsistent about numbers vs strings here.
func (c *Client) ListBudgetMonths(ctx context.Context) ([]BudgetMonth, error) {
	data, err := c.graphql(ctx, "Budgets", ops.Budgets, map[string]any{})
	if err != nil {
		return nil, err
	}

	var payload struct {
		CategoriesTotal struct {
			Budget struct {
				Histories []struct {
					Month  string          `json:"month"`
					Amount json.RawMessage `json:"amount"`
				} `json:"histories"`
			} `json:"budget"`
		} `json:"categoriesTotal"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unexpected Budgets response shape: %w", err)
	}

	out := make([]BudgetMonth, 0, len(payload.CategoriesTotal.Budget.Histories))
	for _, h := range payload.CategoriesTotal.Budget.Histories {
		amount := "null"
		if len(h.Amount) > 0 {
			amount = strings.Trim(string(h.Amount), `"`)
		}
		out = append(out, BudgetMonth{Month: h.Month, Amount: amount})
	}
	return out, nil
}
