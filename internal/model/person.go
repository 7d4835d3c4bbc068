package model

import (
	"fmt"
	"strconv"
)

// Person represents a roster member that tasks can be assigned to.
//
// Persons are soft-deleted: removing one only flips Active off so its
// historical tasks keep resolving, and re-adding it reactivates the record.
type Person struct {
	EmpID  string
	Name   string
	Active bool
}

// Validate validates the person.
func (p *Person) Validate() error {
	if p.EmpID == "" {
		return fmt.Errorf("emp ID is required: %w", ErrNotValid)
	}
	if p.Name == "" {
		return fmt.Errorf("name is required: %w", ErrNotValid)
	}
	return nil
}

// NextEmpID returns the next free numeric emp ID given the existing persons.
// Non-numeric IDs are ignored.
func NextEmpID(persons []Person) string {
	maxID := 0
	for _, p := range persons {
		id, err := strconv.Atoi(p.EmpID)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return strconv.Itoa(maxID + 1)
}
