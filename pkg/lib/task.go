package lib

import (
	"context"
	"fmt"

	"github.com/schedm/schedm/internal/app/backlog"
	"github.com/schedm/schedm/internal/app/taskcreate"
	"github.com/schedm/schedm/internal/app/tasklist"
	"github.com/schedm/schedm/internal/app/taskmove"
	"github.com/schedm/schedm/internal/app/taskremove"
	"github.com/schedm/schedm/internal/app/taskstatus"
)

// AddTask creates a task from quick-add text.
//
// The input is free text with optional tokens anywhere after the title words:
//
//	@1001 or @Ada     assignee (employee ID or name)
//	today, tomorrow,
//	2026-09-03        placement day
//	9:30-11           time span (fractional hours work too: 9.5-11)
//	!urgent           mark urgent (any !word works)
//	#FF8800           display color
//
// A task with a day but no span defaults to 09:00 with a two hour duration.
// A task without a day goes to the backlog.
//
// Returns [ErrNotValid] if the input has no title words or the tokens
// conflict, [ErrNotFound] if the assignee is unknown.
func (c *Client) AddTask(ctx context.Context, input string) (*Task, error) {
	svc, err := taskcreate.NewService(taskcreate.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, taskcreate.Request{Input: input})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*task)
	return &result, nil
}

// ListTasks lists tasks matching the given filters.
// Pass nil opts to list all tasks.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) ([]Task, error) {
	svc, err := tasklist.NewService(tasklist.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	req := tasklist.Request{}
	if opts != nil {
		req.PersonFilter = opts.Person
		req.StatusFilter = toInternalStatus(opts.Status)
		req.From = opts.From
		req.To = opts.To
	}

	tasks, err := svc.Run(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(tasks), nil
}

// MoveTask changes a task's placement: its person, day, start or duration.
// Fields left nil in opts keep their current value. Setting opts.ToBacklog
// unschedules the task instead and can't be combined with placement fields.
//
// Returns [ErrNotFound] if the task (or target person) does not exist,
// [ErrNotValid] if the resulting placement is invalid.
func (c *Client) MoveTask(ctx context.Context, taskID string, opts MoveTaskOpts) (*Task, error) {
	svc, err := taskmove.NewService(taskmove.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, taskmove.Request{
		TaskID:    taskID,
		Person:    opts.Person,
		Date:      opts.Date,
		Start:     opts.Start,
		Duration:  opts.Duration,
		ToBacklog: opts.ToBacklog,
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*task)
	return &result, nil
}

// CycleTaskStatus advances a task to the next status in the cycle
// (todo -> blocked -> done -> todo) and returns the updated task.
//
// Returns [ErrNotFound] if the task does not exist.
func (c *Client) CycleTaskStatus(ctx context.Context, taskID string) (*Task, error) {
	return c.setTaskStatus(ctx, taskID, nil)
}

// SetTaskStatus sets a task's status explicitly and returns the updated task.
//
// Returns [ErrNotFound] if the task does not exist, [ErrNotValid] if the
// status is unknown.
func (c *Client) SetTaskStatus(ctx context.Context, taskID string, status TaskStatus) (*Task, error) {
	return c.setTaskStatus(ctx, taskID, &status)
}

func (c *Client) setTaskStatus(ctx context.Context, taskID string, status *TaskStatus) (*Task, error) {
	svc, err := taskstatus.NewService(taskstatus.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, taskstatus.Request{
		TaskID: taskID,
		Status: toInternalStatus(status),
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(*task)
	return &result, nil
}

// RemoveTask deletes a task permanently.
//
// Returns [ErrNotFound] if the task does not exist.
func (c *Client) RemoveTask(ctx context.Context, taskID string) error {
	svc, err := taskremove.NewService(taskremove.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	err = svc.Run(ctx, taskremove.Request{TaskID: taskID})
	if err != nil {
		return mapError(err)
	}

	return nil
}

// Backlog lists unscheduled tasks, urgent ones first, then oldest first.
func (c *Client) Backlog(ctx context.Context) ([]Task, error) {
	svc, err := backlog.NewService(backlog.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, backlog.Request{})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(tasks), nil
}
