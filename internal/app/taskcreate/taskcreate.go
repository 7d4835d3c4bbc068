// Package taskcreate implements the inline task creation use case.
package taskcreate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
	"github.com/schedm/schedm/internal/utils/quickadd"
)

// ServiceConfig is the configuration for the task create service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
	// Now lets tests pin the clock.
	Now func() time.Time
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

// Service creates tasks from quick-add text input.
type Service struct {
	repo   storage.Repository
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new task create service.
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

// Request represents the task creation parameters.
type Request struct {
	// Input is the quick-add text, e.g. "Oxygen maintenance @1001 tomorrow 9-11".
	// A person marker can be an emp ID or a name. Tasks without a date land in
	// the backlog.
	Input string
}

// Run parses the input and stores the resulting task.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	spec, err := quickadd.Parse(req.Input, s.now())
	if err != nil {
		return nil, fmt.Errorf("could not parse input: %v: %w", err, model.ErrNotValid)
	}

	now := s.now().UTC()
	task := model.Task{
		ID:        ulid.Make().String(),
		Title:     spec.Title,
		Color:     spec.Color,
		Urgent:    spec.Urgent,
		Status:    model.TaskStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if task.Color == "" {
		task.Color = model.DefaultTaskColor
	}

	if spec.Person != "" {
		person, err := s.resolvePerson(ctx, spec.Person)
		if err != nil {
			return nil, err
		}
		task.Person = person.EmpID
	}

	if spec.Date != nil {
		if task.Person == "" {
			return nil, fmt.Errorf("a dated task needs a person: %w", model.ErrNotValid)
		}
		task.Scheduled = true
		task.Date = model.Day(*spec.Date)
		task.StartHour = 9
		task.DurationHours = 2
		if spec.Start != nil {
			task.StartHour = *spec.Start
			task.DurationHours = *spec.Duration
		}
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("could not store task: %w", err)
	}

	s.logger.Infof("Created task %s (%s)", task.ID, task.Title)
	return &task, nil
}

func (s *Service) resolvePerson(ctx context.Context, ref string) (*model.Person, error) {
	person, err := s.repo.GetPerson(ctx, ref)
	if errors.Is(err, model.ErrNotFound) {
		person, err = s.repo.GetPersonByName(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("could not resolve person %q: %w", ref, err)
	}

	if !person.Active {
		return nil, fmt.Errorf("person %q is inactive: %w", ref, model.ErrNotValid)
	}

	return person, nil
}
