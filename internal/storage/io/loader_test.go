package io

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/model"
)

func TestScheduleYAMLRepository_GetSchedule(t *testing.T) {
	tests := map[string]struct {
		fs          fstest.MapFS
		path        string
		expSchedule model.Schedule
		expErr      bool
		errMsg      string
	}{
		"Valid schedule should load successfully": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Write report
    person: "1001"
    date: "2026-09-02"
    start: 9
    duration: 2
    color: "#FF8800"
    urgent: true
    status: blocked
`),
				},
			},
			path: "schedule.yaml",
			expSchedule: model.Schedule{
				Persons: []model.Person{
					{EmpID: "1001", Name: "Ada", Active: true},
				},
				Tasks: []model.Task{
					{
						Title:         "Write report",
						Person:        "1001",
						Scheduled:     true,
						Date:          time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
						StartHour:     9,
						DurationHours: 2,
						Color:         "#FF8800",
						Urgent:        true,
						Status:        model.TaskStatusBlocked,
					},
				},
			},
		},
		"Task without date should load into the backlog with defaults": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Sharpen pencils
    person: "1001"
`),
				},
			},
			path: "schedule.yaml",
			expSchedule: model.Schedule{
				Persons: []model.Person{
					{EmpID: "1001", Name: "Ada", Active: true},
				},
				Tasks: []model.Task{
					{
						Title:  "Sharpen pencils",
						Person: "1001",
						Color:  model.DefaultTaskColor,
						Status: model.TaskStatusTodo,
					},
				},
			},
		},
		"Empty schedule should load successfully": {
			fs: fstest.MapFS{
				"empty.yaml": &fstest.MapFile{
					Data: []byte(`---
`),
				},
			},
			path: "empty.yaml",
			expSchedule: model.Schedule{
				Persons: []model.Person{},
				Tasks:   []model.Task{},
			},
		},
		"Missing file should return error": {
			fs:     fstest.MapFS{},
			path:   "nonexistent.yaml",
			expErr: true,
			errMsg: "reading schedule file",
		},
		"Invalid YAML should return error": {
			fs: fstest.MapFS{
				"invalid.yaml": &fstest.MapFile{
					Data: []byte(`invalid: yaml: content: {}`),
				},
			},
			path:   "invalid.yaml",
			expErr: true,
			errMsg: "parsing YAML",
		},
		"Duplicated emp_id should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
  - emp_id: "1001"
    name: Grace
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: `duplicated emp_id "1001"`,
		},
		"Task referencing unknown person should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`tasks:
  - title: Write report
    person: "9999"
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: `unknown person "9999"`,
		},
		"Dated task without person should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`tasks:
  - title: Write report
    date: "2026-09-02"
    duration: 2
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: "scheduled task needs a person",
		},
		"Dated task without duration should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Write report
    person: "1001"
    date: "2026-09-02"
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: "duration must be positive",
		},
		"Dated task with start hour past the day should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Write report
    person: "1001"
    date: "2026-09-02"
    start: 30
    duration: 2
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: "start must be in [0, 24)",
		},
		"Dated task with negative start hour should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Write report
    person: "1001"
    date: "2026-09-02"
    start: -1
    duration: 2
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: "start must be in [0, 24)",
		},
		"Unknown status should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`tasks:
  - title: Write report
    status: archived
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: `unknown status "archived"`,
		},
		"Malformed date should return error": {
			fs: fstest.MapFS{
				"schedule.yaml": &fstest.MapFile{
					Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Write report
    person: "1001"
    date: "02/09/2026"
    duration: 2
`),
				},
			},
			path:   "schedule.yaml",
			expErr: true,
			errMsg: "invalid date",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewScheduleYAMLRepository(tc.fs)
			schedule, err := repo.GetSchedule(context.Background(), tc.path)

			if tc.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expSchedule, schedule)
		})
	}
}

func TestScheduleYAMLRepository_GetSchedule_ContextCancellation(t *testing.T) {
	fs := fstest.MapFS{
		"schedule.yaml": &fstest.MapFile{
			Data: []byte(`persons:
  - emp_id: "1001"
    name: Ada
`),
		},
	}

	repo := NewScheduleYAMLRepository(fs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := repo.GetSchedule(ctx, "schedule.yaml")
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}
