package lib

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/app/importer"
	storageio "github.com/schedm/schedm/internal/storage/io"
)

// Grid composes the week view for the requested window: one row per active
// person, one cell per day, with every cell's tasks assigned to parallel
// tracks so overlapping spans never share a lane.
//
// Track assignment is recomputed from scratch on every call, it is never
// read from storage. Pass nil opts for the default window (today, 7 days).
func (c *Client) Grid(ctx context.Context, opts *GridOpts) (*Grid, error) {
	svc, err := grid.NewService(grid.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	req := grid.Request{}
	if opts != nil {
		req.StartDate = opts.StartDate
		req.Days = opts.Days
	}

	g, err := svc.Run(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalGrid(*g)
	return &result, nil
}

// ImportSchedule loads a YAML schedule document from the given filesystem
// and imports it: persons are created (or updated in place when the employee
// ID already exists), tasks are always created fresh with new IDs.
//
// Malformed documents and references to unknown persons fail the whole
// import, nothing is written in that case.
func (c *Client) ImportSchedule(ctx context.Context, fsys fs.FS, path string) (*ImportResult, error) {
	svc, err := importer.NewService(importer.ServiceConfig{
		Repository: c.repo,
		Loader:     storageio.NewScheduleYAMLRepository(fsys),
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	res, err := svc.Run(ctx, importer.Request{Path: path})
	if err != nil {
		return nil, mapError(err)
	}

	return &ImportResult{
		Persons: res.Persons,
		Tasks:   res.Tasks,
	}, nil
}
