package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/taskstatus"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type CycleCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskID string
	set    string
}

// NewCycleCommand returns the cycle command.
func NewCycleCommand(rootCmd *RootCommand, app *kingpin.Application) *CycleCommand {
	c := &CycleCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("cycle", "Cycle a task's status (todo -> blocked -> done -> todo).")
	c.Cmd.Arg("task-id", "ID of the task.").Required().StringVar(&c.taskID)
	c.Cmd.Flag("set", "Set an explicit status instead of cycling (todo, blocked, done).").StringVar(&c.set)

	return c
}

func (c CycleCommand) Name() string { return c.Cmd.FullCommand() }

func (c CycleCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	req := taskstatus.Request{TaskID: c.taskID}

	if c.set != "" {
		status := model.TaskStatus(strings.ToLower(c.set))
		switch status {
		case model.TaskStatusTodo, model.TaskStatusBlocked, model.TaskStatusDone:
			req.Status = &status
		default:
			return fmt.Errorf("invalid status: %s (must be: todo, blocked, done)", c.set)
		}
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := taskstatus.NewService(taskstatus.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("could not change status: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Task %s is now %s", task.ID, task.Status)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
