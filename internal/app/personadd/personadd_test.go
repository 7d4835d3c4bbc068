package personadd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/app/personadd"
	"github.com/schedm/schedm/internal/model"
	"github.com/schedm/schedm/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		req         personadd.Request
		setupMocks  func(repo *storagemock.MockRepository)
		expErr      bool
		expIs       error
		validateRes func(t *testing.T, person *model.Person)
	}{
		"A new person with an explicit emp ID gets created": {
			req: personadd.Request{Name: "Ada", EmpID: "1001"},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetPerson", mock.Anything, "1001").Return(nil, model.ErrNotFound)
				repo.On("CreatePerson", mock.Anything, model.Person{EmpID: "1001", Name: "Ada", Active: true}).Return(nil)
			},
			validateRes: func(t *testing.T, person *model.Person) {
				assert.Equal(t, "1001", person.EmpID)
				assert.True(t, person.Active)
			},
		},

		"A new person without an emp ID gets the next free numeric one": {
			req: personadd.Request{Name: "Grace"},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetPersonByName", mock.Anything, "Grace").Return(nil, model.ErrNotFound)
				repo.On("ListPersons", mock.Anything).Return([]model.Person{
					{EmpID: "1001", Name: "Ada", Active: true},
					{EmpID: "7", Name: "Old", Active: false},
				}, nil)
				repo.On("CreatePerson", mock.Anything, model.Person{EmpID: "1002", Name: "Grace", Active: true}).Return(nil)
			},
			validateRes: func(t *testing.T, person *model.Person) {
				assert.Equal(t, "1002", person.EmpID)
			},
		},

		"A known emp ID renames and reactivates in place": {
			req: personadd.Request{Name: "Ada L.", EmpID: "1001"},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetPerson", mock.Anything, "1001").
					Return(&model.Person{EmpID: "1001", Name: "Ada", Active: false}, nil)
				repo.On("UpdatePerson", mock.Anything, model.Person{EmpID: "1001", Name: "Ada L.", Active: true}).Return(nil)
			},
			validateRes: func(t *testing.T, person *model.Person) {
				assert.Equal(t, "Ada L.", person.Name)
				assert.True(t, person.Active)
			},
		},

		"A known name without an emp ID reactivates the old record": {
			req: personadd.Request{Name: "Ada"},
			setupMocks: func(repo *storagemock.MockRepository) {
				repo.On("GetPersonByName", mock.Anything, "Ada").
					Return(&model.Person{EmpID: "1001", Name: "Ada", Active: false}, nil)
				repo.On("UpdatePerson", mock.Anything, model.Person{EmpID: "1001", Name: "Ada", Active: true}).Return(nil)
			},
			validateRes: func(t *testing.T, person *model.Person) {
				assert.Equal(t, "1001", person.EmpID)
				assert.True(t, person.Active)
			},
		},

		"An empty name fails": {
			req:        personadd.Request{},
			setupMocks: func(repo *storagemock.MockRepository) {},
			expErr:     true,
			expIs:      model.ErrNotValid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := &storagemock.MockRepository{}
			tt.setupMocks(repo)

			svc, err := personadd.NewService(personadd.ServiceConfig{Repository: repo})
			require.NoError(t, err)

			person, err := svc.Run(context.Background(), tt.req)

			if tt.expErr {
				require.Error(t, err)
				if tt.expIs != nil {
					assert.True(t, errors.Is(err, tt.expIs), "expected error %v, got: %v", tt.expIs, err)
				}
			} else {
				require.NoError(t, err)
				tt.validateRes(t, person)
			}

			repo.AssertExpectations(t)
		})
	}
}
