package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type GridCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	from   string
	days   int
	format string
}

// NewGridCommand returns the grid command.
func NewGridCommand(rootCmd *RootCommand, app *kingpin.Application) *GridCommand {
	c := &GridCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("grid", "Show the person x day grid with stacked task tracks.")
	c.Cmd.Flag("from", "First day of the view (YYYY-MM-DD), defaults to today.").StringVar(&c.from)
	c.Cmd.Flag("days", "Number of day columns.").Default("7").IntVar(&c.days)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c GridCommand) Name() string { return c.Cmd.FullCommand() }

func (c GridCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	req := grid.Request{Days: c.days}
	if c.from != "" {
		from, err := time.ParseInLocation("2006-01-02", c.from, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
		req.StartDate = from
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := grid.NewService(grid.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	g, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("could not compose grid: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintGrid(*g); err != nil {
		return fmt.Errorf("could not print grid: %w", err)
	}

	return nil
}
