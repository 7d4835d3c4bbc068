package tasklist

import (
	"context"
	"fmt"
	"time"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the task list service.
type ServiceConfig struct {
	Repository storage.TaskRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists tasks with optional filtering.
type Service struct {
	repo   storage.TaskRepository
	logger log.Logger
}

// NewService creates a new task list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// PersonFilter only shows tasks assigned to this emp ID.
	PersonFilter *string
	// StatusFilter only shows tasks with this status.
	StatusFilter *model.TaskStatus
	// From/To bound the task date (inclusive, scheduled tasks only).
	From *time.Time
	To   *time.Time
}

// Run lists tasks matching the request filters.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	s.logger.Debugf("listing tasks with filters person=%v status=%v", req.PersonFilter, req.StatusFilter)

	tasks, err := s.repo.ListTasks(ctx, storage.TaskFilter{
		Person: req.PersonFilter,
		Status: req.StatusFilter,
		From:   req.From,
		To:     req.To,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	s.logger.Debugf("found %d tasks", len(tasks))
	return tasks, nil
}
