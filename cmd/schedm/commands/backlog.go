package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/backlog"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type BacklogCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewBacklogCommand returns the backlog command.
func NewBacklogCommand(rootCmd *RootCommand, app *kingpin.Application) *BacklogCommand {
	c := &BacklogCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("backlog", "List unscheduled tasks, urgent first.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c BacklogCommand) Name() string { return c.Cmd.FullCommand() }

func (c BacklogCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := backlog.NewService(backlog.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, backlog.Request{})
	if err != nil {
		return fmt.Errorf("could not list backlog: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintBacklog(tasks); err != nil {
		return fmt.Errorf("could not print backlog: %w", err)
	}

	return nil
}
