// Package backlog implements the unscheduled-task lane: everything that has
// no grid placement yet, urgent entries first.
package backlog

import (
	"context"
	"fmt"
	"sort"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the backlog service.
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

// Service lists the backlog lane.
type Service struct {
	repo   storage.TaskRepository
	logger log.Logger
}

// NewService creates a new backlog service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the backlog request parameters.
type Request struct{}

// Run lists unscheduled tasks, urgent first, then by creation time.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	scheduled := false
	tasks, err := s.repo.ListTasks(ctx, storage.TaskFilter{Scheduled: &scheduled})
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Urgent != tasks[j].Urgent {
			return tasks[i].Urgent
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	s.logger.Debugf("found %d backlog tasks", len(tasks))
	return tasks, nil
}
