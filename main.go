package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/javisoto/copilot-money-api/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "copilot",
		Usage:   "Unofficial CLI for Copilot Money: transactions, categories, tags, recurrings, budgets, and schema inference from captured GraphQL operations.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("COPILOT_LOG_LEVEL"),
				Value:       "warn",
				Destination: &ctrl.Flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "output format: json|table",
				Value:       "table",
				Destination: &ctrl.Flags.Output,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Usage:       "API base URL",
				Sources:     cli.EnvVars("COPILOT_BASE_URL"),
				Value:       commands.DefaultBaseURL,
				Destination: &ctrl.Flags.BaseURL,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "bearer token (overrides the token file)",
				Sources:     cli.EnvVars("COPILOT_TOKEN"),
				Destination: &ctrl.Flags.Token,
			},
			&cli.StringFlag{
				Name:        "token-file",
				Usage:       "path to the token file",
				Destination: &ctrl.Flags.TokenFile,
			},
			&cli.StringFlag{
				Name:        "fixtures-dir",
				Usage:       "read API responses from {Operation}.json files in this directory instead of the network",
				Destination: &ctrl.Flags.FixturesDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "auth",
				Usage: "Token management",
				Commands: []*cli.Command{
					{
						Name:  "status",
						Usage: "Show whether a token is configured and accepted by the API",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.AuthStatus(ctx)
						},
					},
					{
						Name:      "set-token",
						Usage:     "Store a bearer token (prompts when no argument is given)",
						ArgsUsage: "[token]",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.AuthSetToken(ctx, c.Args().First())
						},
					},
				},
			},
			{
				Name:  "transactions",
				Usage: "List, inspect, and edit transactions",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List the newest transactions",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Usage: "maximum number of transactions", Value: 50},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.TransactionsList(ctx, int(c.Int("limit")))
						},
					},
					{
						Name:      "search",
						Usage:     "Search transactions by free text",
						ArgsUsage: "<query>",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Usage: "maximum number of transactions", Value: 50},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing search query")
							}
							return ctrl.TransactionsSearch(ctx, c.Args().First(), int(c.Int("limit")))
						},
					},
					{
						Name:      "show",
						Usage:     "Show one transaction",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing transaction id")
							}
							return ctrl.TransactionsShow(ctx, c.Args().First())
						},
					},
					{
						Name:      "review",
						Usage:     "Mark a transaction reviewed",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing transaction id")
							}
							return ctrl.TransactionsReview(ctx, c.Args().First(), true)
						},
					},
					{
						Name:      "unreview",
						Usage:     "Mark a transaction unreviewed",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing transaction id")
							}
							return ctrl.TransactionsReview(ctx, c.Args().First(), false)
						},
					},
					{
						Name:      "set-category",
						Usage:     "Move a transaction to another category",
						ArgsUsage: "<id> <category-id>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().Get(0) == "" || c.Args().Get(1) == "" {
								return fmt.Errorf("usage: set-category <id> <category-id>")
							}
							return ctrl.TransactionsSetCategory(ctx, c.Args().Get(0), c.Args().Get(1))
						},
					},
					{
						Name:      "set-notes",
						Usage:     "Replace a transaction's notes",
						ArgsUsage: "<id> <notes>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().Get(0) == "" {
								return fmt.Errorf("usage: set-notes <id> <notes>")
							}
							return ctrl.TransactionsSetNotes(ctx, c.Args().Get(0), c.Args().Get(1))
						},
					},
				},
			},
			{
				Name:  "categories",
				Usage: "List and edit spending categories",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List all categories",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.CategoriesList(ctx)
						},
					},
					{
						Name:      "create",
						Usage:     "Create a category",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "group", Usage: "category group"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing category name")
							}
							return ctrl.CategoriesCreate(ctx, c.Args().First(), c.String("group"))
						},
					},
					{
						Name:      "edit",
						Usage:     "Rename a category",
						ArgsUsage: "<id>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Usage: "new category name", Required: true},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing category id")
							}
							return ctrl.CategoriesEdit(ctx, c.Args().First(), c.String("name"))
						},
					},
				},
			},
			{
				Name:  "tags",
				Usage: "List and edit tags",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List all tags",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.TagsList(ctx)
						},
					},
					{
						Name:      "create",
						Usage:     "Create a tag",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "color", Usage: "hex color"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing tag name")
							}
							return ctrl.TagsCreate(ctx, c.Args().First(), c.String("color"))
						},
					},
					{
						Name:      "delete",
						Usage:     "Delete a tag",
						ArgsUsage: "<id>",
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing tag id")
							}
							return ctrl.TagsDelete(ctx, c.Args().First())
						},
					},
				},
			},
			{
				Name:  "recurrings",
				Usage: "List and create recurring payments",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List all recurrings",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.RecurringsList(ctx)
						},
					},
					{
						Name:      "create",
						Usage:     "Create a recurring payment",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "frequency", Usage: "DAILY|WEEKLY|BIWEEKLY|MONTHLY|QUARTERLY|ANNUALLY", Value: "MONTHLY"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							if c.Args().First() == "" {
								return fmt.Errorf("missing recurring name")
							}
							return ctrl.RecurringsCreate(ctx, c.Args().First(), c.String("frequency"))
						},
					},
				},
			},
			{
				Name:  "budgets",
				Usage: "Budget history",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List per-month budget history",
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.BudgetsList(ctx)
						},
					},
				},
			},
			{
				Name:  "schema",
				Usage: "Schema inference from captured GraphQL operations",
				Commands: []*cli.Command{
					{
						Name:  "gen",
						Usage: "Generate a best-effort SDL stub from captured .graphql documents",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "graphql-dir",
								Usage: "directory of .graphql documents (default: newest capture under artifacts/graphql-ops)",
							},
							&cli.StringFlag{
								Name:  "out",
								Usage: "output path for the generated schema",
								Value: "schema/schema.graphql",
							},
							&cli.BoolFlag{
								Name:  "watch",
								Usage: "keep running and regenerate when documents change",
							},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							return ctrl.SchemaGen(ctx, commands.SchemaGenOptions{
								GraphQLDir: c.String("graphql-dir"),
								Out:        c.String("out"),
								Watch:      c.Bool("watch"),
							})
						},
					},
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run copilot")
	}
}
