package lib

import (
	"errors"
	"time"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/model"
)

var (
	// ErrNotFound is returned when a task or person does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource with the same ID already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned on invalid input or an invalid operation.
	ErrNotValid = errors.New("not valid")
)

// TaskStatus represents the workflow state of a task.
//
// The cycle order is:
//
//	todo -> blocked -> done -> todo
type TaskStatus string

const (
	// TaskStatusTodo indicates the task has not been started.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusBlocked indicates the task is waiting on something.
	TaskStatusBlocked TaskStatus = "blocked"
	// TaskStatusDone indicates the task is finished.
	TaskStatusDone TaskStatus = "done"
)

// Task represents a task returned by the SDK.
//
// This is a read-only snapshot of the task state at the time of the API call.
type Task struct {
	// ID is the unique identifier (ULID) assigned at creation.
	ID string
	// Title is the task description.
	Title string
	// Person is the assignee's employee ID. Empty for unassigned backlog tasks.
	Person string
	// Scheduled indicates whether the task is placed on the grid. Unscheduled
	// tasks live in the backlog.
	Scheduled bool
	// Date is the calendar day the task is placed on (UTC midnight).
	// Zero when unscheduled.
	Date time.Time
	// StartHour is the start of the task span in fractional hours (9.5 == 09:30).
	StartHour float64
	// DurationHours is the span length in fractional hours.
	DurationHours float64
	// Color is the display color as "#RRGGBB".
	Color string
	// Urgent marks the task as urgent. Urgent tasks sort first in the backlog.
	Urgent bool
	// Status is the workflow state.
	Status TaskStatus
	// CreatedAt is when the task was created.
	CreatedAt time.Time
	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time
}

// Person represents a schedulable person returned by the SDK.
type Person struct {
	// EmpID is the employee ID (numeric string, unique).
	EmpID string
	// Name is the display name.
	Name string
	// Active is false for soft-deleted persons. Inactive persons keep their
	// tasks but can't receive new ones.
	Active bool
}

// ListTasksOpts configures task listing.
//
// Pass nil to [Client.ListTasks] to list all tasks.
type ListTasksOpts struct {
	// Person filters tasks by assignee employee ID. Nil means all persons.
	Person *string
	// Status filters tasks by status. Nil means all statuses.
	Status *TaskStatus
	// From/To bound the task date (inclusive, scheduled tasks only).
	From *time.Time
	To   *time.Time
}

// MoveTaskOpts configures a task move. Nil fields keep the current value.
//
// ToBacklog unschedules the task and is exclusive with the placement fields.
type MoveTaskOpts struct {
	// Person reassigns the task. Accepts an employee ID or a person name.
	Person *string
	// Date places the task on a calendar day.
	Date *time.Time
	// Start sets the start hour (fractional, e.g. 9.5 for 09:30).
	Start *float64
	// Duration sets the span length in fractional hours.
	Duration *float64
	// ToBacklog unschedules the task.
	ToBacklog bool
}

// GridOpts configures the grid composition.
//
// Pass nil to [Client.Grid] to get the default window (today, 7 days).
type GridOpts struct {
	// StartDate is the first day of the view. Zero means today.
	StartDate time.Time
	// Days is the number of day columns. 0 means 7.
	Days int
}

// GridCell is one person+date bucket of the grid.
type GridCell struct {
	// Date is the cell's calendar day.
	Date time.Time
	// Tasks are ordered by start hour.
	Tasks []Task
	// Tracks maps each task in Tasks (by index) to its assigned track.
	Tracks []int
	// TrackCount is the number of parallel tracks the cell needs.
	TrackCount int
	// Height is the pixel height the cell needs for its tracks.
	Height int
}

// GridRow is one person's lane across the requested days.
type GridRow struct {
	Person Person
	Cells  []GridCell
	// Height is the tallest cell height, the whole row renders at it.
	Height int
}

// Grid is the composed week view.
type Grid struct {
	StartDate time.Time
	Days      int
	Rows      []GridRow
}

// ImportResult summarizes an import run.
type ImportResult struct {
	// Persons is the number of persons created or updated.
	Persons int
	// Tasks is the number of tasks created.
	Tasks int
}

// --- Internal conversion helpers ---

func fromInternalTask(t model.Task) Task {
	return Task{
		ID:            t.ID,
		Title:         t.Title,
		Person:        t.Person,
		Scheduled:     t.Scheduled,
		Date:          t.Date,
		StartHour:     t.StartHour,
		DurationHours: t.DurationHours,
		Color:         t.Color,
		Urgent:        t.Urgent,
		Status:        TaskStatus(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func fromInternalPerson(p model.Person) Person {
	return Person{
		EmpID:  p.EmpID,
		Name:   p.Name,
		Active: p.Active,
	}
}

func fromInternalPersonList(ps []model.Person) []Person {
	result := make([]Person, len(ps))
	for i, p := range ps {
		result[i] = fromInternalPerson(p)
	}
	return result
}

func toInternalStatus(s *TaskStatus) *model.TaskStatus {
	if s == nil {
		return nil
	}
	st := model.TaskStatus(*s)
	return &st
}

func fromInternalGrid(g grid.Grid) Grid {
	result := Grid{
		StartDate: g.StartDate,
		Days:      g.Days,
		Rows:      make([]GridRow, len(g.Rows)),
	}

	for i, row := range g.Rows {
		r := GridRow{
			Person: fromInternalPerson(row.Person),
			Cells:  make([]GridCell, len(row.Cells)),
			Height: row.Height,
		}
		for j, cell := range row.Cells {
			tracks := make([]int, len(cell.Tasks))
			for k, t := range cell.Tasks {
				tracks[k] = t.Track
			}
			r.Cells[j] = GridCell{
				Date:       cell.Date,
				Tasks:      fromInternalTaskList(cell.Tasks),
				Tracks:     tracks,
				TrackCount: cell.TrackCount,
				Height:     cell.Height,
			}
		}
		result.Rows[i] = r
	}

	return result
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

// mappedError translates internal sentinel errors into the SDK's public ones
// while keeping the original message and chain.
type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
