// Package personremove implements roster soft deletion: the person is only
// deactivated so its historical tasks keep resolving.
package personremove

import (
	"context"
	"fmt"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the person remove service.
type ServiceConfig struct {
	Repository storage.PersonRepository
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

// Service soft-deletes roster members.
type Service struct {
	repo   storage.PersonRepository
	logger log.Logger
}

// NewService creates a new person remove service.
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
	EmpID string
}

// Run deactivates the person.
func (s *Service) Run(ctx context.Context, req Request) error {
	if req.EmpID == "" {
		return fmt.Errorf("emp ID is required: %w", model.ErrNotValid)
	}

	person, err := s.repo.GetPerson(ctx, req.EmpID)
	if err != nil {
		return fmt.Errorf("could not get person: %w", err)
	}

	person.Active = false
	if err := s.repo.UpdatePerson(ctx, *person); err != nil {
		return fmt.Errorf("could not store person: %w", err)
	}

	s.logger.Infof("Deactivated person %s", req.EmpID)
	return nil
}
