package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/javisoto/copilot-money-api/internal/client"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// TransactionsList prints the newest transactions.
func (c *Controller) TransactionsList(ctx context.Context, limit int) error {
	txns, err := c.client().ListTransactions(ctx, limit)
	if err != nil {
		return err
	}
	return c.renderTransactions(txns)
}

// TransactionsSearch prints transactions matching a free-text query.
func (c *Controller) TransactionsSearch(ctx context.Context, query string, limit int) error {
	txns, err := c.client().SearchTransactions(ctx, query, limit)
	if err != nil {
		return err
	}
	return c.renderTransactions(txns)
}

// TransactionsShow prints one transaction as key/value rows.
func (c *Controller) TransactionsShow(ctx context.Context, id string) error {
	txn, err := c.client().Transaction(ctx, id)
	if err != nil {
		return err
	}

	reviewed := "-"
	if txn.IsReviewed != nil {
		if *txn.IsReviewed {
			reviewed = "true"
		} else {
			reviewed = "false"
		}
	}

	return c.renderKeyValues([]render.KeyValue{
		{Key: "id", Value: txn.ID},
		{Key: "date", Value: render.OrDash(txn.Date)},
		{Key: "name", Value: render.OrDash(txn.Name)},
		{Key: "amount", Value: render.OrDash(txn.Amount)},
		{Key: "notes", Value: render.OrDash(txn.Notes)},
		{Key: "reviewed", Value: reviewed},
		{Key: "category_id", Value: render.OrDash(txn.CategoryID)},
	})
}

// TransactionsReview marks a transaction reviewed or unreviewed.
func (c *Controller) TransactionsReview(ctx context.Context, id string, reviewed bool) error {
	txn, err := c.client().SetTransactionReviewed(ctx, id, reviewed)
	if err != nil {
		return err
	}
	return c.renderTransactions(oneTransaction(txn))
}

// TransactionsSetCategory moves a transaction to another category.
func (c *Controller) TransactionsSetCategory(ctx context.Context, id, categoryID string) error {
	txn, err := c.client().SetTransactionCategory(ctx, id, categoryID)
	if err != nil {
		return err
	}
	return c.renderTransactions(oneTransaction(txn))
}

// TransactionsSetNotes replaces a transaction's notes.
func (c *Controller) TransactionsSetNotes(ctx context.Context, id, notes string) error {
	txn, err := c.client().SetTransactionNotes(ctx, id, notes)
	if err != nil {
		return err
	}
	return c.renderTransactions(oneTransaction(txn))
}

func oneTransaction(txn *client.Transaction) []client.Transaction {
	if txn == nil {
		return nil
	}
	return []client.Transaction{*txn}
}

func (c *Controller) renderTransactions(txns []client.Transaction) error {
	rows := make([]table.Row, 0, len(txns))
	for _, t := range txns {
		reviewed := ""
		if t.IsReviewed != nil && *t.IsReviewed {
			reviewed = "✓"
		}
		rows = append(rows, table.Row{
			render.ShortenID(t.ID),
			render.OrDash(t.Date),
			render.OrDash(t.Name),
			render.OrDash(t.Amount),
			reviewed,
			render.OrDash(t.CategoryID),
		})
	}
	header := table.Row{"ID", "Date", "Name", "Amount", "Reviewed", "Category"}
	return c.renderRows(txns, header, rows)
}
