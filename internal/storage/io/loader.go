package io

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/schedm/schedm/internal/model"
)

// ScheduleYAMLRepository loads schedule documents from YAML files.
type ScheduleYAMLRepository struct {
	fs fs.FS
}

// NewScheduleYAMLRepository creates a new YAML schedule repository.
func NewScheduleYAMLRepository(filesystem fs.FS) *ScheduleYAMLRepository {
	return &ScheduleYAMLRepository{fs: filesystem}
}

// GetSchedule loads a schedule from a YAML file and returns a validated domain model.
func (r *ScheduleYAMLRepository) GetSchedule(ctx context.Context, path string) (model.Schedule, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("reading schedule file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Schedule{}, ctx.Err()
	}

	var doc Schedule
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Schedule{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := doc.validate(); err != nil {
		return model.Schedule{}, fmt.Errorf("invalid schedule: %w", err)
	}

	return doc.toModel()
}

// Schedule represents the YAML structure for a schedule document.
type Schedule struct {
	Persons []PersonEntry `yaml:"persons"`
	Tasks   []TaskEntry   `yaml:"tasks"`
}

// PersonEntry represents the YAML structure for a roster member.
type PersonEntry struct {
	EmpID string `yaml:"emp_id"`
	Name  string `yaml:"name"`
}

// TaskEntry represents the YAML structure for a task. Tasks without a date are
// imported into the backlog.
type TaskEntry struct {
	Title    string  `yaml:"title"`
	Person   string  `yaml:"person"`
	Date     string  `yaml:"date"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Color    string  `yaml:"color"`
	Urgent   bool    `yaml:"urgent"`
	Status   string  `yaml:"status"`
}

func (s Schedule) validate() error {
	seen := map[string]bool{}
	for i, p := range s.Persons {
		if p.EmpID == "" {
			return fmt.Errorf("person %d: emp_id is required", i)
		}
		if p.Name == "" {
			return fmt.Errorf("person %d: name is required", i)
		}
		if seen[p.EmpID] {
			return fmt.Errorf("person %d: duplicated emp_id %q", i, p.EmpID)
		}
		seen[p.EmpID] = true
	}

	for i, t := range s.Tasks {
		if t.Title == "" {
			return fmt.Errorf("task %d: title is required", i)
		}
		if t.Person != "" && !seen[t.Person] {
			return fmt.Errorf("task %d: unknown person %q", i, t.Person)
		}
		if t.Date != "" {
			if t.Person == "" {
				return fmt.Errorf("task %d: scheduled task needs a person", i)
			}
			if t.Duration <= 0 {
				return fmt.Errorf("task %d: duration must be positive", i)
			}
			if t.Start < 0 || t.Start >= 24 {
				return fmt.Errorf("task %d: start must be in [0, 24)", i)
			}
		}
		switch t.Status {
		case "", string(model.TaskStatusTodo), string(model.TaskStatusBlocked), string(model.TaskStatusDone):
		default:
			return fmt.Errorf("task %d: unknown status %q", i, t.Status)
		}
	}

	return nil
}

func (s Schedule) toModel() (model.Schedule, error) {
	schedule := model.Schedule{
		Persons: make([]model.Person, 0, len(s.Persons)),
		Tasks:   make([]model.Task, 0, len(s.Tasks)),
	}

	for _, p := range s.Persons {
		schedule.Persons = append(schedule.Persons, model.Person{
			EmpID:  p.EmpID,
			Name:   p.Name,
			Active: true,
		})
	}

	for i, t := range s.Tasks {
		task := model.Task{
			Title:         t.Title,
			Person:        t.Person,
			StartHour:     t.Start,
			DurationHours: t.Duration,
			Color:         t.Color,
			Urgent:        t.Urgent,
			Status:        model.TaskStatus(t.Status),
		}
		if task.Color == "" {
			task.Color = model.DefaultTaskColor
		}
		if task.Status == "" {
			task.Status = model.TaskStatusTodo
		}
		if t.Date != "" {
			date, err := time.ParseInLocation("2006-01-02", t.Date, time.UTC)
			if err != nil {
				return model.Schedule{}, fmt.Errorf("task %d: invalid date %q: %w", i, t.Date, err)
			}
			task.Scheduled = true
			task.Date = date
		}

		schedule.Tasks = append(schedule.Tasks, task)
	}

	return schedule, nil
}
