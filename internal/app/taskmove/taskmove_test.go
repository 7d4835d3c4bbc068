package taskmove_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/app/taskmove"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	now := time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)

	scheduledTask := func() *model.Task {
		return &model.Task{
			ID:            "task1",
			Title:         "Oxygen maintenance",
			Person:        "1001",
			Scheduled:     true,
			Date:          time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			StartHour:     9.5,
			DurationHours: 1.5,
			Color:         model.DefaultTaskColor,
			Status:        model.TaskStatusTodo,
		}
	}
	backlogTask := func() *model.Task {
		return &model.Task{
			ID:     "task2",
			Title:  "Patch the hull",
			Color:  model.DefaultTaskColor,
			Status: model.TaskStatusTodo,
		}
	}

	strPtr := func(s string) *string { return &s }
	f64Ptr := func(f float64) *float64 { return &f }
	timePtr := func(ts time.Time) *time.Time { return &ts }

	tests := map[string]struct {
		req         taskmove.Request
		setupMocks  func(repo *storagemock.MockRepository)
		expErr      bool
		expIs       error
		validateRes func(t *testing.T, task *model.Task)
	}{
		"Moving to another day keeps the rest of the placement": {
			req: taskmove.Request{
				TaskID: "task1",
				Date:   timePtr(time.Date(2026, 9, 4, 10, 30, 0, 0, time.UTC)),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
				repo.On("UpdateTask", mock.Anything, mock.Anything).Return(nil)
			},
			validateRes: func(t *testing.T, task *model.Task) {
				// The date normalizes to UTC midnight.
				assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), task.Date)
				assert.Equal(t, 9.5, task.StartHour)
				assert.Equal(t, now, task.UpdatedAt)
			},
		},

		"Moving a backlog task onto a day schedules it with the default duration": {
			req: taskmove.Request{
				TaskID: "task2",
				Person: strPtr("1001"),
				Date:   timePtr(time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task2").Return(backlogTask(), nil)
				repo.On("GetPerson", mock.Anything, "1001").
					Return(&model.Person{EmpID: "1001", Name: "Ada", Active: true}, nil)
				repo.On("UpdateTask", mock.Anything, mock.Anything).Return(nil)
			},
			validateRes: func(t *testing.T, task *model.Task) {
				assert.True(t, task.Scheduled)
				assert.Equal(t, float64(2), task.DurationHours)
			},
		},

		"Reassigning by name resolves the person": {
			req: taskmove.Request{
				TaskID: "task1",
				Person: strPtr("Grace"),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
				repo.On("GetPerson", mock.Anything, "Grace").Return(nil, model.ErrNotFound)
				repo.On("GetPersonByName", mock.Anything, "Grace").
					Return(&model.Person{EmpID: "1002", Name: "Grace", Active: true}, nil)
				repo.On("UpdateTask", mock.Anything, mock.Anything).Return(nil)
			},
			validateRes: func(t *testing.T, task *model.Task) {
				assert.Equal(t, "1002", task.Person)
			},
		},

		"Changing the span keeps the day": {
			req: taskmove.Request{
				TaskID:   "task1",
				Start:    f64Ptr(13),
				Duration: f64Ptr(3),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
				repo.On("UpdateTask", mock.Anything, mock.Anything).Return(nil)
			},
			validateRes: func(t *testing.T, task *model.Task) {
				assert.Equal(t, float64(13), task.StartHour)
				assert.Equal(t, float64(3), task.DurationHours)
				assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), task.Date)
			},
		},

		"A backlog move unschedules the task": {
			req: taskmove.Request{
				TaskID:    "task1",
				ToBacklog: true,
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
				repo.On("UpdateTask", mock.Anything, mock.Anything).Return(nil)
			},
			validateRes: func(t *testing.T, task *model.Task) {
				assert.False(t, task.Scheduled)
				assert.True(t, task.Date.IsZero())
			},
		},

		"A backlog move combined with a placement fails": {
			req: taskmove.Request{
				TaskID:    "task1",
				ToBacklog: true,
				Start:     f64Ptr(10),
			},
			setupMocks: func(repo *storagemock.MockRepository) {},
			expErr:     true,
			expIs:      model.ErrNotValid,
		},

		"An inactive person fails": {
			req: taskmove.Request{
				TaskID: "task1",
				Person: strPtr("1002"),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
				repo.On("GetPerson", mock.Anything, "1002").
					Return(&model.Person{EmpID: "1002", Name: "Grace", Active: false}, nil)
			},
			expErr: true,
			expIs:  model.ErrNotValid,
		},

		"An out of range start fails validation": {
			req: taskmove.Request{
				TaskID: "task1",
				Start:  f64Ptr(25),
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "task1").Return(scheduledTask(), nil)
			},
			expErr: true,
			expIs:  model.ErrNotValid,
		},

		"A missing task fails with not found": {
			req: taskmove.Request{
				TaskID:    "missing",
				ToBacklog: true,
			},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetTask", mock.Anything, "missing").Return(nil, model.ErrNotFound)
			},
			expErr: true,
			expIs:  model.ErrNotFound,
		},

		"An empty task ID fails": {
			req:        taskmove.Request{},
			setupMocks: func(repo *storagemock.MockRepository) {},
			expErr:     true,
			expIs:      model.ErrNotValid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &storagemock.MockRepository{}
			tt.setupMocks(repo)

			svc, err := taskmove.NewService(taskmove.ServiceConfig{
				Repository: repo,
				Now:        func() time.Time { return now },
			})
			require.NoError(t, err)

			task, err := svc.Run(context.Background(), tt.req)

			if tt.expErr {
				require.Error(t, err)
				if tt.expIs != nil {
					assert.True(t, errors.Is(err, tt.expIs), "expected error %v, got: %v", tt.expIs, err)
				}
			} else {
				require.NoError(t, err)
				tt.validateRes(t, task)
			}

			repo.AssertExpectations(t)
		})
	}
}
