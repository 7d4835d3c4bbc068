package taskremove

import (
	"context"
	"fmt"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the task remove service.
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

// Service deletes tasks.
type Service struct {
	repo   storage.TaskRepository
	logger log.Logger
}

// NewService creates a new task remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	TaskID string
}

// Run deletes the task.
func (s *Service) Run(ctx context.Context, req Request) error {
	if req.TaskID == "" {
		return fmt.Errorf("task ID is required: %w", model.ErrNotValid)
	}

	if err := s.repo.DeleteTask(ctx, req.TaskID); err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}

	s.logger.Infof("Deleted task %s", req.TaskID)
	return nil
}
