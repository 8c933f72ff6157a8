package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/javisoto/copilot-money-api/internal/client"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// RecurringsList prints all recurring payments.
func (c *Controller) RecurringsList(ctx context.Context) error {
	recs, err := c.client().ListRecurrings(ctx)
	if err != nil {
		return err
	}
	return c.renderRecurrings(recs)
}

// RecurringsCreate creates a recurring payment.
func (c *Controller) RecurringsCreate(ctx context.Context, name, frequency string) error {
	rec, err := c.client().CreateRecurring(ctx, name, frequency)
	if err != nil {
		return err
	}
	if rec == nil {
		return c.renderRecurrings(nil)
	}
	return c.renderRecurrings([]client.Recurring{*rec})
}

func (c *Controller) renderRecurrings(recs []client.Recurring) error {
	rows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, table.Row{
			render.ShortenID(r.ID),
			render.OrDash(r.Name),
			render.OrDash(r.Frequency),
			render.OrDash(r.Amount),
			render.OrDash(r.NextDate),
		})
	}
	return c.renderRows(recs, table.Row{"ID", "Name", "Frequency", "Amount", "Next"}, rows)
}
