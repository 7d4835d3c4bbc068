package model

import (
	"fmt"
	"time"
)

// TaskStatus represents the state of a task.
type TaskStatus string

const (
	// TaskStatusTodo indicates the task is pending work.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusBlocked indicates the task is waiting on something external.
	TaskStatusBlocked TaskStatus = "blocked"
	// TaskStatusDone indicates the task is completed.
	TaskStatusDone TaskStatus = "done"
)

// NextStatus returns the status that follows s in the cycle
// todo -> blocked -> done -> todo.
func (s TaskStatus) NextStatus() TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusBlocked
	case TaskStatusBlocked:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

// DefaultTaskColor is the color assigned to tasks created without one.
const DefaultTaskColor = "#5B859E"

// Task represents a single schedule entry. A task is either scheduled on a
// person+date cell with an hour span, or it sits unscheduled in the backlog.
type Task struct {
	ID            string
	Title         string
	Person        string // Person emp ID, empty for backlog tasks without owner.
	Scheduled     bool
	Date          time.Time // Calendar day (UTC midnight), zero when unscheduled.
	StartHour     float64   // Fractional hours, e.g. 9.5 == 09:30.
	DurationHours float64
	Color         string
	Urgent        bool
	Status        TaskStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Track is the lane assigned by the layout engine. It is derived on every
	// layout pass and never persisted.
	Track int
}

// EndHour returns the hour the task span ends at.
func (t Task) EndHour() float64 {
	return t.StartHour + t.DurationHours
}

// Validate validates a task for creation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required: %w", ErrNotValid)
	}

	if t.Status != TaskStatusTodo && t.Status != TaskStatusBlocked && t.Status != TaskStatusDone {
		return fmt.Errorf("unknown status %q: %w", t.Status, ErrNotValid)
	}

	if !t.Scheduled {
		return nil
	}

	// Scheduled tasks need a full placement.
	if t.Person == "" {
		return fmt.Errorf("scheduled task needs a person: %w", ErrNotValid)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("scheduled task needs a date: %w", ErrNotValid)
	}
	if t.DurationHours <= 0 {
		return fmt.Errorf("duration must be positive: %w", ErrNotValid)
	}
	if t.StartHour < 0 || t.StartHour >= 24 {
		return fmt.Errorf("start hour must be in [0, 24): %w", ErrNotValid)
	}

	return nil
}

// Day normalizes a time to its calendar day at UTC midnight, the canonical
// form for Task.Date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
