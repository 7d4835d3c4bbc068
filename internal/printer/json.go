package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/model"
)

// JSONPrinter prints schedule information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskOutput represents a task in JSON output. Track only appears in grid
// output, it is a layout result and not part of the stored record.
type taskOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Person    string    `json:"person,omitempty"`
	Scheduled bool      `json:"scheduled"`
	Date      string    `json:"date,omitempty"`
	Start     float64   `json:"start,omitempty"`
	Duration  float64   `json:"duration,omitempty"`
	Color     string    `json:"color"`
	Urgent    bool      `json:"urgent,omitempty"`
	Status    string    `json:"status"`
	Track     *int      `json:"track,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// personOutput represents a roster member in JSON output.
type personOutput struct {
	EmpID  string `json:"emp_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// gridOutput represents the composed week view.
type gridOutput struct {
	StartDate string          `json:"start_date"`
	Days      int             `json:"days"`
	Rows      []gridRowOutput `json:"rows"`
}

type gridRowOutput struct {
	Person personOutput     `json:"person"`
	Height int              `json:"height"`
	Cells  []gridCellOutput `json:"cells"`
}

type gridCellOutput struct {
	Date       string       `json:"date"`
	TrackCount int          `json:"track_count"`
	Height     int          `json:"height"`
	Tasks      []taskOutput `json:"tasks"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintTaskList prints tasks in JSON format.
func (j *JSONPrinter) PrintTaskList(tasks []model.Task) error {
	items := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskOutput(t, false)
	}
	return j.print(items)
}

// PrintTask prints a single task in JSON format.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.print(newTaskOutput(task, false))
}

// PrintPersonList prints roster members in JSON format.
func (j *JSONPrinter) PrintPersonList(persons []model.Person) error {
	items := make([]personOutput, len(persons))
	for i, p := range persons {
		items[i] = personOutput{EmpID: p.EmpID, Name: p.Name, Active: p.Active}
	}
	return j.print(items)
}

// PrintGrid prints the composed week view in JSON format, tracks included.
func (j *JSONPrinter) PrintGrid(g grid.Grid) error {
	out := gridOutput{
		StartDate: g.StartDate.Format("2006-01-02"),
		Days:      g.Days,
		Rows:      make([]gridRowOutput, len(g.Rows)),
	}

	for i, row := range g.Rows {
		rowOut := gridRowOutput{
			Person: personOutput{EmpID: row.Person.EmpID, Name: row.Person.Name, Active: row.Person.Active},
			Height: row.Height,
			Cells:  make([]gridCellOutput, len(row.Cells)),
		}
		for c, cell := range row.Cells {
			cellOut := gridCellOutput{
				Date:       cell.Date.Format("2006-01-02"),
				TrackCount: cell.TrackCount,
				Height:     cell.Height,
				Tasks:      make([]taskOutput, len(cell.Tasks)),
			}
			for t, task := range cell.Tasks {
				cellOut.Tasks[t] = newTaskOutput(task, true)
			}
			rowOut.Cells[c] = cellOut
		}
		out.Rows[i] = rowOut
	}

	return j.print(out)
}

// PrintBacklog prints the unscheduled lane in JSON format.
func (j *JSONPrinter) PrintBacklog(tasks []model.Task) error {
	return j.PrintTaskList(tasks)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.print(messageOutput{Message: msg})
}

func (j *JSONPrinter) print(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTaskOutput(t model.Task, withTrack bool) taskOutput {
	out := taskOutput{
		ID:        t.ID,
		Title:     t.Title,
		Person:    t.Person,
		Scheduled: t.Scheduled,
		Color:     t.Color,
		Urgent:    t.Urgent,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}
	if t.Scheduled {
		out.Date = t.Date.Format("2006-01-02")
		out.Start = t.StartHour
		out.Duration = t.DurationHours
	}
	if withTrack {
		track := t.Track
		out.Track = &track
	}
	return out
}
