// Package taskstatus implements the status switch: setting a task's status
// directly or cycling it the way a click on the status toggle does
// (todo -> blocked -> done -> todo).
package taskstatus

import (
	"context"
	"fmt"
	"time"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the task status service.
type ServiceConfig struct {
	Repository storage.TaskRepository
	Logger     log.Logger
	Now        func() time.Time
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return nil
}

// Service changes task statuses.
type Service struct {
	repo   storage.TaskRepository
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new task status service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		now:    cfg.Now,
	}, nil
}

// Request represents the status change parameters.
type Request struct {
	TaskID string
	// Status sets an explicit status. When nil the current status is cycled.
	Status *model.TaskStatus
}

// Run applies the status change and returns the updated task.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	if req.TaskID == "" {
		return nil, fmt.Errorf("task ID is required: %w", model.ErrNotValid)
	}

	task, err := s.repo.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	if req.Status != nil {
		switch *req.Status {
		case model.TaskStatusTodo, model.TaskStatusBlocked, model.TaskStatusDone:
		default:
			return nil, fmt.Errorf("unknown status %q: %w", *req.Status, model.ErrNotValid)
		}
		task.Status = *req.Status
	} else {
		task.Status = task.Status.NextStatus()
	}

	task.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTask(ctx, *task); err != nil {
		return nil, fmt.Errorf("could not store task: %w", err)
	}

	s.logger.Infof("Task %s is now %s", task.ID, task.Status)
	return task, nil
}
