package grid_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/layout"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
	"github.com/schedm/schedm/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	ada := model.Person{EmpID: "1001", Name: "Ada", Active: true}
	grace := model.Person{EmpID: "1002", Name: "Grace", Active: true}
	gone := model.Person{EmpID: "1003", Name: "Old", Active: false}

	task := func(id, person string, date time.Time, start, duration float64) model.Task {
		return model.Task{
			ID: id, Title: id, Person: person, Scheduled: true,
			Date: date, StartHour: start, DurationHours: duration,
			Color: model.DefaultTaskColor, Status: model.TaskStatusTodo,
		}
	}

	tests := map[string]struct {
		req         grid.Request
		setupMocks  func(repo *storagemock.MockRepository)
		expErr      bool
		validateRes func(t *testing.T, g *grid.Grid)
	}{
		"Overlapping tasks stack on separate tracks, touching ones reuse them": {
			req: grid.Request{StartDate: day, Days: 1},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("ListPersons", mock.Anything).Return([]model.Person{ada}, nil)
				repo.On("ListTasks", mock.Anything, mock.Anything).Return([]model.Task{
					task("sleep", "1001", day, 0, 8),
					task("work", "1001", day, 6, 8),
					task("exercise", "1001", day, 14, 2),
				}, nil)
			},
			validateRes: func(t *testing.T, g *grid.Grid) {
				require.Len(t, g.Rows, 1)
				require.Len(t, g.Rows[0].Cells, 1)

				cell := g.Rows[0].Cells[0]
				assert.Equal(t, 2, cell.TrackCount)
				require.Len(t, cell.Tasks, 3)
				assert.Equal(t, 0, cell.Tasks[0].Track)
				assert.Equal(t, 1, cell.Tasks[1].Track)
				assert.Equal(t, 0, cell.Tasks[2].Track)

				// Two tracks at the default geometry.
				assert.Equal(t, 2*layout.DefaultRowHeight+layout.DefaultSpacing, cell.Height)
				assert.Equal(t, cell.Height, g.Rows[0].Height)
			},
		},

		"Tasks bucket per person and day": {
			req: grid.Request{StartDate: day, Days: 2},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("ListPersons", mock.Anything).Return([]model.Person{ada, grace}, nil)
				repo.On("ListTasks", mock.Anything, mock.Anything).Return([]model.Task{
					task("a1", "1001", day, 9, 2),
					task("a2", "1001", nextDay, 9, 2),
					task("g1", "1002", day, 9, 2),
				}, nil)
			},
			validateRes: func(t *testing.T, g *grid.Grid) {
				require.Len(t, g.Rows, 2)
				require.Len(t, g.Rows[0].Cells, 2)

				assert.Len(t, g.Rows[0].Cells[0].Tasks, 1)
				assert.Len(t, g.Rows[0].Cells[1].Tasks, 1)
				assert.Len(t, g.Rows[1].Cells[0].Tasks, 1)
				assert.Empty(t, g.Rows[1].Cells[1].Tasks)

				// Empty cells still reserve one row.
				assert.Equal(t, layout.DefaultRowHeight, g.Rows[1].Cells[1].Height)
			},
		},

		"Inactive persons get no row": {
			req: grid.Request{StartDate: day, Days: 1},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("ListPersons", mock.Anything).Return([]model.Person{ada, gone}, nil)
				repo.On("ListTasks", mock.Anything, mock.Anything).Return([]model.Task{}, nil)
			},
			validateRes: func(t *testing.T, g *grid.Grid) {
				require.Len(t, g.Rows, 1)
				assert.Equal(t, "1001", g.Rows[0].Person.EmpID)
			},
		},

		"The window defaults to seven days from today": {
			req: grid.Request{},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("ListPersons", mock.Anything).Return([]model.Person{}, nil)
				repo.On("ListTasks", mock.Anything, mock.Anything).Return([]model.Task{}, nil)
			},
			validateRes: func(t *testing.T, g *grid.Grid) {
				assert.Equal(t, day, g.StartDate) // Pinned clock.
				assert.Equal(t, 7, g.Days)
				assert.Empty(t, g.Rows)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &storagemock.MockRepository{}
			tt.setupMocks(repo)

			svc, err := grid.NewService(grid.ServiceConfig{
				Repository: repo,
				Now:        func() time.Time { return day.Add(10 * time.Hour) },
			})
			require.NoError(t, err)

			g, err := svc.Run(context.Background(), tt.req)

			if tt.expErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.validateRes(t, g)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestServiceRunScheduledFilter(t *testing.T) {
	// The repository must only be asked for scheduled tasks inside the window.
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	end := day.AddDate(0, 0, 6)

	repo := &storagemock.MockRepository{}
	repo.On("ListPersons", mock.Anything).Return([]model.Person{}, nil)
	repo.On("ListTasks", mock.Anything, mock.MatchedBy(func(filter storage.TaskFilter) bool {
		return filter.Scheduled != nil && *filter.Scheduled &&
			filter.From != nil && filter.From.Equal(day) &&
			filter.To != nil && filter.To.Equal(end)
	})).Return([]model.Task{}, nil)

	svc, err := grid.NewService(grid.ServiceConfig{Repository: repo})
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), grid.Request{StartDate: day})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
