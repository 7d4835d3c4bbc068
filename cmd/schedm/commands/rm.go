package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/taskremove"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type RmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID string
}

// NewRmCommand returns the rm command.
func NewRmCommand(rootCmd *RootCommand, app *kingpin.Application) *RmCommand {
	c := &RmCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("rm", "Remove a task.")
	c.Cmd.Arg("task-id", "ID of the task to remove.").Required().StringVar(&c.taskID)

	return c
}

func (c RmCommand) Name() string { return c.Cmd.FullCommand() }

func (c RmCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := taskremove.NewService(taskremove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx, taskremove.Request{TaskID: c.taskID}); err != nil {
		return fmt.Errorf("could not remove task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Removed task %s", c.taskID)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
