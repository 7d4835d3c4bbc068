package personlist

import (
	"context"
	"fmt"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the person list service.
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

// Service lists roster members.
type Service struct {
	repo   storage.PersonRepository
	logger log.Logger
}

// NewService creates a new person list service.
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
	// All includes soft-deleted persons.
	All bool
}

// Run lists persons, active ones only unless All is set.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Person, error) {
	persons, err := s.repo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list persons: %w", err)
	}

	if !req.All {
		active := make([]model.Person, 0, len(persons))
		for _, p := range persons {
			if p.Active {
				active = append(active, p)
			}
		}
		persons = active
	}

	s.logger.Debugf("found %d persons", len(persons))
	return persons, nil
}
