package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/javisoto/copilot-money-api/internal/client"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// TagsList prints all tags.
func (c *Controller) TagsList(ctx context.Context) error {
	tags, err := c.client().ListTags(ctx)
	if err != nil {
		return err
	}
	return c.renderTags(tags)
}

// TagsCreate creates a tag; color may be empty.
func (c *Controller) TagsCreate(ctx context.Context, name, color string) error {
	var colorPtr *string
	if color != "" {
		colorPtr = &color
	}

	tag, err := c.client().CreateTag(ctx, name, colorPtr)
	if err != nil {
		return err
	}
	if tag == nil {
		return c.renderTags(nil)
	}
	return c.renderTags([]client.Tag{*tag})
}

// TagsDelete deletes a tag by ID.
func (c *Controller) TagsDelete(ctx context.Context, id string) error {
	if err := c.client().DeleteTag(ctx, id); err != nil {
		return err
	}
	return c.renderKeyValues([]render.KeyValue{
		{Key: "deleted", Value: id},
	})
}

func (c *Controller) renderTags(tags []client.Tag) error {
	rows := make([]table.Row, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, table.Row{
			render.ShortenID(t.ID),
			t.Name,
			render.OrDash(t.Color),
		})
	}
	return c.renderRows(tags, table.Row{"ID", "Name", "Color"}, rows)
}
