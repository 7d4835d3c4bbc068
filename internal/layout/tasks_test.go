package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/internal/layout"
	"github.com/schedm/schedm/internal/model"
)

func TestAssignTasks(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tasks := []model.Task{
		{ID: "t1", Title: "sleep", StartHour: 0, DurationHours: 8},
		{ID: "t2", Title: "work", StartHour: 6, DurationHours: 8},
		{ID: "t3", Title: "exercise", StartHour: 12, DurationHours: 4},
	}

	got, trackCount := layout.AssignTasks(tasks)

	require.Len(got, 3)
	assert.Equal(2, trackCount)
	assert.Equal(0, got[0].Track)
	assert.Equal(1, got[1].Track)
	assert.Equal(0, got[2].Track)

	// The input slice stays untouched.
	for _, task := range tasks {
		assert.Equal(0, task.Track)
	}
	assert.Equal("t2", got[1].ID)
}

func TestAssignTasksEmpty(t *testing.T) {
	got, trackCount := layout.AssignTasks(nil)

	assert.Empty(t, got)
	assert.Equal(t, 0, trackCount)
}
