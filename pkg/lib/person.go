package lib

import (
	"context"
	"fmt"

	"github.com/schedm/schedm/internal/app/personadd"
	"github.com/schedm/schedm/internal/app/personlist"
	"github.com/schedm/schedm/internal/app/personremove"
)

// AddPerson adds a person with the given name and returns the stored record.
// empID is optional, the next free numeric employee ID is assigned when empty.
//
// Adding an employee ID that already exists renames (and reactivates) that
// person in place, and adding a known name without an ID reactivates the
// existing record instead of creating a duplicate.
//
// Returns [ErrNotValid] if the name is empty.
func (c *Client) AddPerson(ctx context.Context, name, empID string) (*Person, error) {
	svc, err := personadd.NewService(personadd.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	person, err := svc.Run(ctx, personadd.Request{
		Name:  name,
		EmpID: empID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalPerson(*person)
	return &result, nil
}

// ListPersons lists active persons. Set all to include soft-deleted ones.
func (c *Client) ListPersons(ctx context.Context, all bool) ([]Person, error) {
	svc, err := personlist.NewService(personlist.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	persons, err := svc.Run(ctx, personlist.Request{All: all})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalPersonList(persons), nil
}

// RemovePerson soft-deletes a person by employee ID. Their tasks are kept
// and the person can be reactivated later with [Client.AddPerson].
//
// Returns [ErrNotFound] if the person does not exist.
func (c *Client) RemovePerson(ctx context.Context, empID string) error {
	svc, err := personremove.NewService(personremove.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	err = svc.Run(ctx, personremove.Request{EmpID: empID})
	if err != nil {
		return mapError(err)
	}

	return nil
}
