// Package personadd implements adding a roster member. Re-adding an existing
// emp ID renames and reactivates it, re-adding a known name reactivates it,
// anything else creates a fresh person with the next free numeric emp ID.
package personadd

import (
	"context"
	"errors"
	"fmt"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the person add service.
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

// Service adds persons to the roster.
type Service struct {
	repo   storage.PersonRepository
	logger log.Logger
}

// NewService creates a new person add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the person add parameters.
type Request struct {
	Name string
	// EmpID is optional, the next free numeric ID is used when empty.
	EmpID string
}

// Run adds (or reactivates) the person and returns the stored record.
func (s *Service) Run(ctx context.Context, req Request) (*model.Person, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", model.ErrNotValid)
	}

	// Known emp ID: rename and reactivate.
	if req.EmpID != "" {
		existing, err := s.repo.GetPerson(ctx, req.EmpID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("could not get person: %w", err)
		}
		if existing != nil {
			existing.Name = req.Name
			existing.Active = true
			if err := s.repo.UpdatePerson(ctx, *existing); err != nil {
				return nil, fmt.Errorf("could not store person: %w", err)
			}
			s.logger.Infof("Reactivated person %s (%s)", existing.EmpID, existing.Name)
			return existing, nil
		}
	}

	empID := req.EmpID
	if empID == "" {
		// Known name: reactivate.
		existing, err := s.repo.GetPersonByName(ctx, req.Name)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("could not get person by name: %w", err)
		}
		if existing != nil {
			existing.Active = true
			if err := s.repo.UpdatePerson(ctx, *existing); err != nil {
				return nil, fmt.Errorf("could not store person: %w", err)
			}
			s.logger.Infof("Reactivated person %s (%s)", existing.EmpID, existing.Name)
			return existing, nil
		}

		persons, err := s.repo.ListPersons(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not list persons: %w", err)
		}
		empID = model.NextEmpID(persons)
	}

	person := model.Person{EmpID: empID, Name: req.Name, Active: true}
	if err := person.Validate(); err != nil {
		return nil, fmt.Errorf("invalid person: %w", err)
	}

	if err := s.repo.CreatePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("could not store person: %w", err)
	}

	s.logger.Infof("Created person %s (%s)", person.EmpID, person.Name)
	return &person, nil
}
