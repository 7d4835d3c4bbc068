package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/tasklist"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	personFilter string
	statusFilter string
	from         string
	to           string
	format       string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List tasks.")
	c.Cmd.Flag("person", "Filter by person emp ID.").StringVar(&c.personFilter)
	c.Cmd.Flag("status", "Filter by status (todo, blocked, done).").StringVar(&c.statusFilter)
	c.Cmd.Flag("from", "Only show tasks on or after this date (YYYY-MM-DD).").StringVar(&c.from)
	c.Cmd.Flag("to", "Only show tasks on or before this date (YYYY-MM-DD).").StringVar(&c.to)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	req := tasklist.Request{}

	if c.personFilter != "" {
		req.PersonFilter = &c.personFilter
	}

	if c.statusFilter != "" {
		status := model.TaskStatus(strings.ToLower(c.statusFilter))
		switch status {
		case model.TaskStatusTodo, model.TaskStatusBlocked, model.TaskStatusDone:
			req.StatusFilter = &status
		default:
			return fmt.Errorf("invalid status filter: %s (must be: todo, blocked, done)", c.statusFilter)
		}
	}

	if c.from != "" {
		from, err := time.ParseInLocation("2006-01-02", c.from, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
		req.From = &from
	}
	if c.to != "" {
		to, err := time.ParseInLocation("2006-01-02", c.to, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid to date: %w", err)
		}
		req.To = &to
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := tasklist.NewService(tasklist.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintTaskList(tasks); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
