// Package grid composes the day/week view: one row per active person, one
// cell per day, with every cell's tasks run through the layout engine so
// overlapping spans stack on separate tracks.
package grid

import (
	"context"
	"fmt"
	"time"

	"github.com/schedm/schedm/internal/layout"
	"github.com/schedm/schedm/internal/log"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// ServiceConfig is the configuration for the grid service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
	// Geometry converts track counts into pixel heights. The zero value uses
	// the default row metrics.
	Geometry layout.Geometry
	Now      func() time.Time
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

// Cell is one person+date bucket of the grid.
type Cell struct {
	Date time.Time
	// Tasks are ordered by start hour and carry their assigned Track.
	Tasks      []model.Task
	TrackCount int
	// Height is the pixel height the cell needs for its tracks.
	Height int
}

// Row is one person's lane across the requested days.
type Row struct {
	Person model.Person
	Cells  []Cell
	// Height is the tallest cell height, the whole row renders at it.
	Height int
}

// Grid is the composed week view.
type Grid struct {
	StartDate time.Time
	Days      int
	Rows      []Row
}

// Service composes grid layouts.
type Service struct {
	repo     storage.Repository
	logger   log.Logger
	geometry layout.Geometry
	now      func() time.Time
}

// NewService creates a new grid service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:     cfg.Repository,
		logger:   cfg.Logger,
		geometry: cfg.Geometry,
		now:      cfg.Now,
	}, nil
}

// Request represents the grid request parameters.
type Request struct {
	// StartDate is the first day of the view, today when zero.
	StartDate time.Time
	// Days is the number of day columns, 7 when not set.
	Days int
}

// Run composes the grid for the requested window. The layout is recomputed
// from scratch on every call, track values are never read from storage.
func (s *Service) Run(ctx context.Context, req Request) (*Grid, error) {
	start := req.StartDate
	if start.IsZero() {
		start = s.now()
	}
	start = model.Day(start)

	days := req.Days
	if days <= 0 {
		days = 7
	}
	end := start.AddDate(0, 0, days-1)

	persons, err := s.repo.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list persons: %w", err)
	}

	scheduled := true
	tasks, err := s.repo.ListTasks(ctx, storage.TaskFilter{
		Scheduled: &scheduled,
		From:      &start,
		To:        &end,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	// Bucket tasks per person+date cell.
	type cellKey struct {
		person string
		date   time.Time
	}
	cells := map[cellKey][]model.Task{}
	for _, t := range tasks {
		key := cellKey{person: t.Person, date: t.Date}
		cells[key] = append(cells[key], t)
	}

	grid := &Grid{StartDate: start, Days: days}
	for _, person := range persons {
		if !person.Active {
			continue
		}

		row := Row{Person: person, Cells: make([]Cell, 0, days)}
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)
			cellTasks, trackCount := layout.AssignTasks(cells[cellKey{person: person.EmpID, date: date}])

			cell := Cell{
				Date:       date,
				Tasks:      cellTasks,
				TrackCount: trackCount,
				Height:     s.geometry.CellHeight(trackCount),
			}
			if cell.Height > row.Height {
				row.Height = cell.Height
			}
			row.Cells = append(row.Cells, cell)
		}

		grid.Rows = append(grid.Rows, row)
	}

	s.logger.Debugf("composed grid of %d rows x %d days over %d tasks", len(grid.Rows), days, len(tasks))
	return grid, nil
}
