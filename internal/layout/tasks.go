package layout

import (
	"github.com/schedm/schedm/internal/model"
)

// AssignTasks runs the layout engine over a group of tasks that must be
// stacked together (typically all tasks on one person+date cell). It returns
// a copy of the tasks with their Track field set plus the number of tracks
// used. The input slice is not modified, the caller decides whether to write
// the annotated copies back.
func AssignTasks(tasks []model.Task) ([]model.Task, int) {
	intervals := make([]Interval, len(tasks))
	for i, t := range tasks {
		intervals[i] = Interval{Start: t.StartHour, End: t.EndHour()}
	}

	assignment := Assign(intervals)

	result := make([]model.Task, len(tasks))
	copy(result, tasks)
	for i := range result {
		result[i].Track = assignment.Tracks[i]
	}

	return result, assignment.TrackCount
}
