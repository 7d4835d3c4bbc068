package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/taskmove"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type MoveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID    string
	person    string
	date      string
	start     float64
	duration  float64
	toBacklog bool
}

// NewMoveCommand returns the move command.
func NewMoveCommand(rootCmd *RootCommand, app *kingpin.Application) *MoveCommand {
	c := &MoveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("move", "Reschedule a task onto another person, date or hour span.")
	c.Cmd.Arg("task-id", "ID of the task to move.").Required().StringVar(&c.taskID)
	c.Cmd.Flag("person", "New person (emp ID or name).").StringVar(&c.person)
	c.Cmd.Flag("date", "New date (YYYY-MM-DD).").StringVar(&c.date)
	c.Cmd.Flag("start", "New start hour (fractional, e.g. 9.5).").Default("-1").Float64Var(&c.start)
	c.Cmd.Flag("duration", "New duration in hours.").Default("-1").Float64Var(&c.duration)
	c.Cmd.Flag("backlog", "Send the task back to the backlog.").BoolVar(&c.toBacklog)

	return c
}

func (c MoveCommand) Name() string { return c.Cmd.FullCommand() }

func (c MoveCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	req := taskmove.Request{
		TaskID:    c.taskID,
		ToBacklog: c.toBacklog,
	}

	if c.person != "" {
		req.Person = &c.person
	}
	if c.date != "" {
		date, err := time.ParseInLocation("2006-01-02", c.date, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		req.Date = &date
	}
	if c.start >= 0 {
		req.Start = &c.start
	}
	if c.duration >= 0 {
		req.Duration = &c.duration
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := taskmove.NewService(taskmove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("could not move task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintTask(*task); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}
