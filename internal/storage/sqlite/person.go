package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/schedm/schedm/internal/model"
)

// CreatePerson creates a new person in the repository.
func (r *Repository) CreatePerson(ctx context.Context, p model.Person) error {
	query := `INSERT INTO persons (emp_id, name, active) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, p.EmpID, p.Name, boolToInt(p.Active))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: persons.") {
			return fmt.Errorf("person already exists: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert person: %w", err)
	}

	r.logger.Debugf("Created person in repository: %s", p.EmpID)
	return nil
}

// GetPerson retrieves a person by emp ID.
func (r *Repository) GetPerson(ctx context.Context, empID string) (*model.Person, error) {
	query := `SELECT emp_id, name, active FROM persons WHERE emp_id = ?`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, empID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person %s: %w", empID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query person: %w", err)
	}

	return person, nil
}

// GetPersonByName retrieves a person by name.
func (r *Repository) GetPersonByName(ctx context.Context, name string) (*model.Person, error) {
	query := `SELECT emp_id, name, active FROM persons WHERE name = ?`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person with name %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query person: %w", err)
	}

	return person, nil
}

// ListPersons returns all persons ordered by emp ID.
func (r *Repository) ListPersons(ctx context.Context) ([]model.Person, error) {
	query := `SELECT emp_id, name, active FROM persons ORDER BY emp_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query persons: %w", err)
	}
	defer rows.Close()

	var persons []model.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan person: %w", err)
		}
		persons = append(persons, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate persons: %w", err)
	}

	return persons, nil
}

// UpdatePerson updates an existing person.
func (r *Repository) UpdatePerson(ctx context.Context, p model.Person) error {
	query := `UPDATE persons SET name = ?, active = ? WHERE emp_id = ?`

	result, err := r.db.ExecContext(ctx, query, p.Name, boolToInt(p.Active), p.EmpID)
	if err != nil {
		return fmt.Errorf("could not update person: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("person %s: %w", p.EmpID, model.ErrNotFound)
	}

	r.logger.Debugf("Updated person in repository: %s", p.EmpID)
	return nil
}

func scanPerson(row rowScanner) (*model.Person, error) {
	var p model.Person
	var active int

	if err := row.Scan(&p.EmpID, &p.Name, &active); err != nil {
		return nil, err
	}

	p.Active = active != 0
	return &p, nil
}
