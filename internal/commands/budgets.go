package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
)

// BudgetsList prints the per-month budget history.
func (c *Controller) BudgetsList(ctx context.Context) error {
	months, err := c.client().ListBudgetMonths(ctx)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(months))
	for _, m := range months {
		rows = append(rows, table.Row{m.Month, m.Amount})
	}
	return c.renderRows(months, table.Row{"Month", "Amount"}, rows)
}
