// Package commands contains the CLI commands for the application
package commands

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/javisoto/copilot-money-api/internal/client"
	"github.com/javisoto/copilot-money-api/internal/config"
	"github.com/javisoto/copilot-money-api/internal/render"
)

// DefaultBaseURL is the production Copilot Money endpoint.
const DefaultBaseURL = "https://app.copilot.money"

// Flags holds the global flag values shared by every command.
type Flags struct {
	Output      string
	BaseURL     string
	Token       string
	TokenFile   string
	FixturesDir string
	LogLevel    string
}

// Controller wires flags, the API client, and output rendering for the CLI
// commands. Out defaults to stdout; tests point it at a buffer.
type Controller struct {
	Flags *Flags
	Out   io.Writer
}

func (c *Controller) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// client builds the API client for this invocation: fixtures when
// --fixtures-dir is set, HTTP otherwise. A missing token is not an error
// here; unauthenticated calls simply fail at the API.
func (c *Controller) client() *client.Client {
	if c.Flags.FixturesDir != "" {
		return client.NewFixtures(c.Flags.FixturesDir)
	}

	baseURL := c.Flags.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	token, _ := c.token()
	return client.New(baseURL, token, nil)
}

// token resolves the bearer token: the --token flag wins, then the token
// file (--token-file or the default path).
func (c *Controller) token() (string, bool) {
	if c.Flags.Token != "" {
		return c.Flags.Token, true
	}

	path, err := c.tokenFilePath()
	if err != nil {
		return "", false
	}
	token, err := config.LoadToken(path)
	if err != nil {
		return "", false
	}
	return token, true
}

func (c *Controller) tokenFilePath() (string, error) {
	if c.Flags.TokenFile != "" {
		return c.Flags.TokenFile, nil
	}
	return config.TokenPath()
}

// renderRows writes jsonValue or a table depending on --output.
func (c *Controller) renderRows(jsonValue any, header table.Row, rows []table.Row) error {
	format, err := render.ParseFormat(c.Flags.Output)
	if err != nil {
		return err
	}

	if format == render.FormatJSON {
		return render.JSON(c.out(), jsonValue)
	}
	render.Table(c.out(), header, rows)
	return nil
}

func (c *Controller) renderKeyValues(rows []render.KeyValue) error {
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.Key, r.Value})
	}
	return c.renderRows(rows, table.Row{"Key", "Value"}, tableRows)
}
