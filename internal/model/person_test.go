package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/model"
)

func TestPersonValidate(t *testing.T) {
	tests := map[string]struct {
		person model.Person
		expErr bool
	}{
		"A valid person should pass.": {
			person: model.Person{EmpID: "1001", Name: "Ada", Active: true},
		},
		"A person without emp ID should fail.": {
			person: model.Person{Name: "Ada"},
			expErr: true,
		},
		"A person without name should fail.": {
			person: model.Person{EmpID: "1001"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.person.Validate()

			if test.expErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrNotValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNextEmpID(t *testing.T) {
	tests := map[string]struct {
		persons  []model.Person
		expected string
	}{
		"An empty roster should start at 1.": {
			persons:  nil,
			expected: "1",
		},
		"The next ID should follow the highest numeric ID.": {
			persons: []model.Person{
				{EmpID: "1001", Name: "Ada"},
				{EmpID: "7", Name: "Grace"},
			},
			expected: "1002",
		},
		"Non-numeric IDs should be ignored.": {
			persons: []model.Person{
				{EmpID: "ext-contractor", Name: "Ada"},
				{EmpID: "3", Name: "Grace"},
			},
			expected: "4",
		},
		"A roster with only non-numeric IDs should start at 1.": {
			persons: []model.Person{
				{EmpID: "ext-contractor", Name: "Ada"},
			},
			expected: "1",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, model.NextEmpID(test.persons))
		})
	}
}
