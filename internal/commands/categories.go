package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/javisoto/copilot-money-api/internal/client"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// CategoriesList prints all spending categories.
func (c *Controller) CategoriesList(ctx context.Context) error {
	cats, err := c.client().ListCategories(ctx)
	if err != nil {
		return err
	}
	return c.renderCategories(cats)
}

// CategoriesCreate creates a category; group may be empty.
func (c *Controller) CategoriesCreate(ctx context.Context, name, group string) error {
	var groupPtr *string
	if group != "" {
		groupPtr = &group
	}

	cat, err := c.client().CreateCategory(ctx, name, groupPtr)
	if err != nil {
		return err
	}
	return c.renderCategories(oneCategory(cat))
}

// CategoriesEdit renames a category.
func (c *Controller) CategoriesEdit(ctx context.Context, id, name string) error {
	cat, err := c.client().UpdateCategory(ctx, id, name)
	if err != nil {
		return err
	}
	return c.renderCategories(oneCategory(cat))
}

func oneCategory(cat *client.Category) []client.Category {
	if cat == nil {
		return nil
	}
	return []client.Category{*cat}
}

func (c *Controller) renderCategories(cats []client.Category) error {
	rows := make([]table.Row, 0, len(cats))
	for _, cat := range cats {
		system := ""
		if cat.IsSystem {
			system = "✓"
		}
		rows = append(rows, table.Row{
			render.ShortenID(cat.ID),
			cat.Name,
			render.OrDash(cat.Group),
			system,
		})
	}
	return c.renderRows(cats, table.Row{"ID", "Name", "Group", "System"}, rows)
}
