// Package taskmove implements rescheduling: the data side of dragging a task
// onto another person, date or hour span, or between grid and backlog. The
// service only mutates the task record, readers rerun the layout engine over
// the affected cells afterwards.
package taskmove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the task move service.
type ServiceConfig struct {
	Repository storage.Repository
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

// Service moves tasks between cells and the backlog.
type Service struct {
	repo   storage.Repository
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new task move service.
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

// Request represents the move parameters. Nil fields keep the current value.
type Request struct {
	TaskID string

	Person   *string
	Date     *time.Time
	Start    *float64
	Duration *float64

	// ToBacklog unschedules the task. It is exclusive with the placement
	// fields above.
	ToBacklog bool
}

// Run applies the move and returns the updated task.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	if req.TaskID == "" {
		return nil, fmt.Errorf("task ID is required: %w", model.ErrNotValid)
	}
	if req.ToBacklog && (req.Person != nil || req.Date != nil || req.Start != nil || req.Duration != nil) {
		return nil, fmt.Errorf("backlog move can't set a placement: %w", model.ErrNotValid)
	}

	task, err := s.repo.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	if req.ToBacklog {
		task.Scheduled = false
		task.Date = time.Time{}
	}

	if req.Person != nil {
		person, err := s.repo.GetPerson(ctx, *req.Person)
		if errors.Is(err, model.ErrNotFound) {
			person, err = s.repo.GetPersonByName(ctx, *req.Person)
		}
		if err != nil {
			return nil, fmt.Errorf("could not resolve person %q: %w", *req.Person, err)
		}
		if !person.Active {
			return nil, fmt.Errorf("person %q is inactive: %w", *req.Person, model.ErrNotValid)
		}
		task.Person = person.EmpID
	}

	if req.Date != nil {
		task.Scheduled = true
		task.Date = model.Day(*req.Date)
		if task.DurationHours <= 0 {
			task.DurationHours = 2
		}
	}

	if req.Start != nil {
		task.StartHour = *req.Start
	}
	if req.Duration != nil {
		task.DurationHours = *req.Duration
	}

	task.UpdatedAt = s.now().UTC()

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task after move: %w", err)
	}

	if err := s.repo.UpdateTask(ctx, *task); err != nil {
		return nil, fmt.Errorf("could not store task: %w", err)
	}

	s.logger.Infof("Moved task %s", task.ID)
	return task, nil
}
