package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/schedm/schedm/internal/model"
)

// CreatePerson creates a new person in the repository.
func (r *Repository) CreatePerson(ctx context.Context, p model.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.persons[p.EmpID]; ok {
		return fmt.Errorf("person with emp ID %s: %w", p.EmpID, model.ErrAlreadyExists)
	}

	r.persons[p.EmpID] = p
	r.logger.Debugf("Created person in repository: %s", p.EmpID)

	return nil
}

// GetPerson retrieves a person by emp ID.
func (r *Repository) GetPerson(ctx context.Context, empID string) (*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.persons[empID]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", empID, model.ErrNotFound)
	}

	// Return a copy.
	personCopy := person
	return &personCopy, nil
}

// GetPersonByName retrieves a person by name.
func (r *Repository) GetPersonByName(ctx context.Context, name string) (*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, person := range r.persons {
		if person.Name == name {
			personCopy := person
			return &personCopy, nil
		}
	}

	return nil, fmt.Errorf("person with name %s: %w", name, model.ErrNotFound)
}

// ListPersons returns all persons ordered by emp ID.
func (r *Repository) ListPersons(ctx context.Context) ([]model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	persons := make([]model.Person, 0, len(r.persons))
	for _, person := range r.persons {
		persons = append(persons, person)
	}

	sort.Slice(persons, func(i, j int) bool { return persons[i].EmpID < persons[j].EmpID })

	return persons, nil
}

// UpdatePerson updates an existing person.
func (r *Repository) UpdatePerson(ctx context.Context, p model.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.persons[p.EmpID]; !ok {
		return fmt.Errorf("person %s: %w", p.EmpID, model.ErrNotFound)
	}

	r.persons[p.EmpID] = p
	r.logger.Debugf("Updated person in repository: %s", p.EmpID)

	return nil
}
