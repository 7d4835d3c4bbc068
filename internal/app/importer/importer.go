// Package importer loads a YAML schedule document (roster + tasks) into
// storage, the bootstrap path that replaces hand-editing the database.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ScheduleGetter knows how to load a schedule document.
type ScheduleGetter interface {
	GetSchedule(ctx context.Context, path string) (model.Schedule, error)
}

// ServiceConfig is the configuration for the importer service.
type ServiceConfig struct {
	Repository storage.Repository
	Loader     ScheduleGetter
	Logger     log.Logger
	Now        func() time.Time
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Loader == nil {
		return fmt.Errorf("loader is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return nil
}

// Service imports schedule documents.
type Service struct {
	repo   storage.Repository
	loader ScheduleGetter
	logger log.Logger
	now    func() time.Time
}

// NewService creates a new importer service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		loader: cfg.Loader,
		logger: cfg.Logger,
		now:    cfg.Now,
	}, nil
}

// Request represents the import parameters.
type Request struct {
	Path string
}

// Result summarizes an import run.
type Result struct {
	Persons int
	Tasks   int
}

// Run imports the document. Persons that already exist are updated in place,
// tasks are always created fresh with new IDs.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path is required: %w", model.ErrNotValid)
	}

	schedule, err := s.loader.GetSchedule(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("could not load schedule: %w", err)
	}

	// The whole document is checked before the first write so a bad entry
	// imports nothing.
	for i := range schedule.Tasks {
		if err := schedule.Tasks[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid task %q: %w", schedule.Tasks[i].Title, err)
		}
	}

	for _, person := range schedule.Persons {
		err := s.repo.CreatePerson(ctx, person)
		if errors.Is(err, model.ErrAlreadyExists) {
			err = s.repo.UpdatePerson(ctx, person)
		}
		if err != nil {
			return nil, fmt.Errorf("could not store person %s: %w", person.EmpID, err)
		}
	}

	now := s.now().UTC()
	for i := range schedule.Tasks {
		task := schedule.Tasks[i]
		task.ID = ulid.Make().String()
		task.CreatedAt = now
		task.UpdatedAt = now

		if err := s.repo.CreateTask(ctx, task); err != nil {
			return nil, fmt.Errorf("could not store task %q: %w", task.Title, err)
		}
	}

	result := &Result{Persons: len(schedule.Persons), Tasks: len(schedule.Tasks)}
	s.logger.Infof("Imported %d persons and %d tasks from %s", result.Persons, result.Tasks, req.Path)
	return result, nil
}
