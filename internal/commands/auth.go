package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/javisoto/copilot-money-api/internal/config"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// AuthStatus reports whether a token is configured and whether the API
// accepts it.
func (c *Controller) AuthStatus(ctx context.Context) error {
	_, configured := c.token()

	rows := []render.KeyValue{
		{Key: "token_configured", Value: fmt.Sprintf("%t", configured)},
	}

	valid := "unknown"
	if configured || c.Flags.FixturesDir != "" {
		if _, err := c.client().User(ctx); err != nil {
			valid = "false"
		} else {
			valid = "true"
		}
	}
	rows = append(rows, render.KeyValue{Key: "token_valid", Value: valid})

	return c.renderKeyValues(rows)
}

// AuthSetToken stores a token in the token file. When no token is passed on
// the command line it prompts for one; opts exists so tests can drive the
// prompt through a scripted tea program.
func (c *Controller) AuthSetToken(ctx context.Context, token string, opts ...tea.ProgramOption) error {
	if token == "" {
		var err error
		token, err = c.promptToken(opts...)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	path, err := c.tokenFilePath()
	if err != nil {
		return err
	}
	if err := config.SaveToken(path, token); err != nil {
		return err
	}

	return c.renderKeyValues([]render.KeyValue{
		{Key: "token_file", Value: path},
		{Key: "saved", Value: "true"},
	})
}

func (c *Controller) promptToken(opts ...tea.ProgramOption) (string, error) {
	var token string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API token").
				Description("Paste the bearer token captured from an authenticated session").
				EchoMode(huh.EchoModePassword).
				Value(&token).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("token cannot be empty")
					}
					return nil
				}),
		),
	)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return "", err
		}
	} else {
		if err := form.Run(); err != nil {
			return "", err
		}
	}

	return token, nil
}
