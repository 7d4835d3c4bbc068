package schedm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskJSON struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Person    string  `json:"person"`
	Scheduled bool    `json:"scheduled"`
	Date      string  `json:"date"`
	Start     float64 `json:"start"`
	Duration  float64 `json:"duration"`
	Urgent    bool    `json:"urgent"`
	Status    string  `json:"status"`
}

type personJSON struct {
	EmpID  string `json:"emp_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type gridJSON struct {
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
	Rows      []struct {
		Person personJSON `json:"person"`
		Height int        `json:"height"`
		Cells  []struct {
			Date       string `json:"date"`
			TrackCount int    `json:"track_count"`
			Height     int    `json:"height"`
			Tasks      []struct {
				Title string `json:"title"`
				Track *int   `json:"track"`
			} `json:"tasks"`
		} `json:"cells"`
	} `json:"rows"`
}

func listTasks(t *testing.T, config Config, env []string) []taskJSON {
	t.Helper()

	out := run(t, config, env, "list --format json")
	var tasks []taskJSON
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	return tasks
}

func TestTaskWorkflow(t *testing.T) {
	config := NewConfig(t)
	env := testEnv(t)

	// Roster first, tasks reference it.
	run(t, config, env, "person add Ada --emp-id 1001")

	// Dated task plus a backlog task.
	runArgs(t, config, env, []string{"add", "Oxygen", "maintenance", "@1001", "2026-09-03", "9:30-11", "!urgent"})
	runArgs(t, config, env, []string{"add", "Patch", "the", "hull"})

	tasks := listTasks(t, config, env)
	require.Len(t, tasks, 2)

	// Scheduled tasks list first.
	scheduled := tasks[0]
	assert.Equal(t, "Oxygen maintenance", scheduled.Title)
	assert.Equal(t, "1001", scheduled.Person)
	assert.True(t, scheduled.Scheduled)
	assert.Equal(t, "2026-09-03", scheduled.Date)
	assert.Equal(t, 9.5, scheduled.Start)
	assert.Equal(t, 1.5, scheduled.Duration)
	assert.True(t, scheduled.Urgent)
	assert.Equal(t, "todo", scheduled.Status)

	// Cycle the status twice: todo -> blocked -> done.
	run(t, config, env, "cycle "+scheduled.ID)
	run(t, config, env, "cycle "+scheduled.ID)

	tasks = listTasks(t, config, env)
	assert.Equal(t, "done", tasks[0].Status)

	// Move it to another day and hour.
	run(t, config, env, "move "+scheduled.ID+" --date 2026-09-04 --start 13")

	tasks = listTasks(t, config, env)
	assert.Equal(t, "2026-09-04", tasks[0].Date)
	assert.Equal(t, 13.0, tasks[0].Start)

	// Send it to the backlog, then remove it.
	run(t, config, env, "move "+scheduled.ID+" --backlog")

	out := run(t, config, env, "backlog --format json")
	var backlog []taskJSON
	require.NoError(t, json.Unmarshal([]byte(out), &backlog))
	require.Len(t, backlog, 2)
	assert.Equal(t, "Oxygen maintenance", backlog[0].Title) // Urgent first.

	run(t, config, env, "rm "+scheduled.ID)
	assert.Len(t, listTasks(t, config, env), 1)
}

func TestGridLayout(t *testing.T) {
	config := NewConfig(t)
	env := testEnv(t)

	run(t, config, env, "person add Ada --emp-id 1001")
	runArgs(t, config, env, []string{"add", "Sleep", "@1001", "2026-09-03", "0-8"})
	runArgs(t, config, env, []string{"add", "Work", "@1001", "2026-09-03", "6-14"})
	runArgs(t, config, env, []string{"add", "Exercise", "@1001", "2026-09-03", "14-16"})

	out := run(t, config, env, "grid --from 2026-09-03 --days 1 --format json")
	var grid gridJSON
	require.NoError(t, json.Unmarshal([]byte(out), &grid))

	assert.Equal(t, "2026-09-03", grid.StartDate)
	assert.Equal(t, 1, grid.Days)
	require.Len(t, grid.Rows, 1)
	require.Len(t, grid.Rows[0].Cells, 1)

	cell := grid.Rows[0].Cells[0]
	assert.Equal(t, 2, cell.TrackCount)
	require.Len(t, cell.Tasks, 3)

	// Sleep and Exercise only touch Work at its endpoints, so they share track 0.
	tracks := map[string]int{}
	for _, task := range cell.Tasks {
		require.NotNil(t, task.Track)
		tracks[task.Title] = *task.Track
	}
	assert.Equal(t, map[string]int{"Sleep": 0, "Work": 1, "Exercise": 0}, tracks)
}

func TestPersonWorkflow(t *testing.T) {
	config := NewConfig(t)
	env := testEnv(t)

	run(t, config, env, "person add Ada")
	run(t, config, env, "person add Grace")

	out := run(t, config, env, "person list --format json")
	var persons []personJSON
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	require.Len(t, persons, 2)
	assert.Equal(t, "1", persons[0].EmpID)
	assert.Equal(t, "2", persons[1].EmpID)

	// Soft delete hides from the default listing but keeps the record.
	run(t, config, env, "person rm 1")

	out = run(t, config, env, "person list --format json")
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	assert.Len(t, persons, 1)

	out = run(t, config, env, "person list --all --format json")
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	assert.Len(t, persons, 2)

	// Re-adding the same name reactivates the old record.
	run(t, config, env, "person add Ada")

	out = run(t, config, env, "person list --format json")
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	assert.Len(t, persons, 2)
}

func TestImport(t *testing.T) {
	config := NewConfig(t)
	env := testEnv(t)

	dir := t.TempDir()
	schedule := `persons:
  - emp_id: "1001"
    name: Ada
tasks:
  - title: Oxygen maintenance
    person: "1001"
    date: 2026-09-03
    start: 9.5
    duration: 1.5
  - title: Patch the hull
    urgent: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schedule.yaml"), []byte(schedule), 0644))

	run(t, config, env, "import -f "+filepath.Join(dir, "schedule.yaml"))

	tasks := listTasks(t, config, env)
	assert.Len(t, tasks, 2)

	out := run(t, config, env, "person list --format json")
	var persons []personJSON
	require.NoError(t, json.Unmarshal([]byte(out), &persons))
	assert.Len(t, persons, 1)
}
