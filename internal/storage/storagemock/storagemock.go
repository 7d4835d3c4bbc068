// Package storagemock holds testify mocks for the storage interfaces.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage"
)

// MockRepository is a mock implementation of storage.Repository.
type MockRepository struct {
	mock.Mock
}

var _ storage.Repository = &MockRepository{}

// CreateTask mocks storage.TaskRepository.CreateTask.
func (m *MockRepository) CreateTask(ctx context.Context, t model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// GetTask mocks storage.TaskRepository.GetTask.
func (m *MockRepository) GetTask(ctx context.Context, id string) (*model.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

// ListTasks mocks storage.TaskRepository.ListTasks.
func (m *MockRepository) ListTasks(ctx context.Context, filter storage.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, filter)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

// UpdateTask mocks storage.TaskRepository.UpdateTask.
func (m *MockRepository) UpdateTask(ctx context.Context, t model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// DeleteTask mocks storage.TaskRepository.DeleteTask.
func (m *MockRepository) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CreatePerson mocks storage.PersonRepository.CreatePerson.
func (m *MockRepository) CreatePerson(ctx context.Context, p model.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// GetPerson mocks storage.PersonRepository.GetPerson.
func (m *MockRepository) GetPerson(ctx context.Context, empID string) (*model.Person, error) {
	args := m.Called(ctx, empID)
	person, _ := args.Get(0).(*model.Person)
	return person, args.Error(1)
}

// GetPersonByName mocks storage.PersonRepository.GetPersonByName.
func (m *MockRepository) GetPersonByName(ctx context.Context, name string) (*model.Person, error) {
	args := m.Called(ctx, name)
	person, _ := args.Get(0).(*model.Person)
	return person, args.Error(1)
}

// ListPersons mocks storage.PersonRepository.ListPersons.
func (m *MockRepository) ListPersons(ctx context.Context) ([]model.Person, error) {
	args := m.Called(ctx)
	persons, _ := args.Get(0).([]model.Person)
	return persons, args.Error(1)
}

// UpdatePerson mocks storage.PersonRepository.UpdatePerson.
func (m *MockRepository) UpdatePerson(ctx context.Context, p model.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
