package storage

import (
	"context"
	"time"

	"github.com/schedm/schedm/internal/model"
)

// TaskFilter narrows down task listings. Nil fields don't filter.
type TaskFilter struct {
	Person    *string
	Status    *model.TaskStatus
	Scheduled *bool
	// From and To bound the task date (inclusive). They only apply to
	// scheduled tasks.
	From *time.Time
	To   *time.Time
}

// TaskRepository is the interface for task persistence.
type TaskRepository interface {
	CreateTask(ctx context.Context, t model.Task) error
	GetTask(ctx context.Context, id string) (*model.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// PersonRepository is the interface for roster persistence.
type PersonRepository interface {
	CreatePerson(ctx context.Context, p model.Person) error
	GetPerson(ctx context.Context, empID string) (*model.Person, error)
	GetPersonByName(ctx context.Context, name string) (*model.Person, error)
	ListPersons(ctx context.Context) ([]model.Person, error)
	UpdatePerson(ctx context.Context, p model.Person) error
}

// Repository groups the task and person repositories. The SQLite and memory
// implementations satisfy it with a single backing store.
type Repository interface {
	TaskRepository
	PersonRepository
}
