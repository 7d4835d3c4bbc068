package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/model"
)

// TablePrinter prints schedule information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTaskList prints tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "ID\tTITLE\tPERSON\tWHEN\tSTATUS\tCREATED")

	// Print rows
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			taskTitle(task),
			task.Person,
			taskWhen(task),
			task.Status,
			TimeAgo(task.CreatedAt),
		)
	}

	return nil
}

// PrintTask prints detailed task information.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:        %s\n", task.ID)
	fmt.Fprintf(t.writer, "Title:     %s\n", task.Title)
	fmt.Fprintf(t.writer, "Status:    %s\n", task.Status)

	if task.Scheduled {
		fmt.Fprintf(t.writer, "Person:    %s\n", task.Person)
		fmt.Fprintf(t.writer, "Date:      %s\n", FormatDate(task.Date))
		fmt.Fprintf(t.writer, "Span:      %s\n", FormatSpan(task.StartHour, task.DurationHours))
	} else {
		fmt.Fprintf(t.writer, "Placement: backlog\n")
		if task.Person != "" {
			fmt.Fprintf(t.writer, "Person:    %s\n", task.Person)
		}
	}

	if task.Urgent {
		fmt.Fprintf(t.writer, "Urgent:    yes\n")
	}
	fmt.Fprintf(t.writer, "Color:     %s\n", task.Color)
	fmt.Fprintf(t.writer, "Created:   %s\n", TimeAgo(task.CreatedAt))
	fmt.Fprintf(t.writer, "Updated:   %s\n", TimeAgo(task.UpdatedAt))

	return nil
}

// PrintPersonList prints roster members in a table format.
func (t *TablePrinter) PrintPersonList(persons []model.Person) error {
	if len(persons) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "EMP ID\tNAME\tACTIVE")

	for _, p := range persons {
		active := "yes"
		if !p.Active {
			active = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.EmpID, p.Name, active)
	}

	return nil
}

// PrintGrid prints the composed week view: one line per placed task with its
// assigned track so stacked (overlapping) tasks are visible as lanes.
func (t *TablePrinter) PrintGrid(g grid.Grid) error {
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "PERSON\tDATE\tTRACK\tSPAN\tTITLE\tSTATUS")

	for _, row := range g.Rows {
		printed := false
		for _, cell := range row.Cells {
			for _, task := range cell.Tasks {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
					row.Person.Name,
					FormatDate(cell.Date),
					task.Track,
					FormatSpan(task.StartHour, task.DurationHours),
					taskTitle(task),
					task.Status,
				)
				printed = true
			}
		}
		if !printed {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\n", row.Person.Name)
		}
	}

	return nil
}

// PrintBacklog prints the unscheduled lane in a table format.
func (t *TablePrinter) PrintBacklog(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tCREATED")

	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID,
			taskTitle(task),
			task.Status,
			TimeAgo(task.CreatedAt),
		)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

func taskTitle(task model.Task) string {
	if task.Urgent {
		return task.Title + " (!)"
	}
	return task.Title
}

func taskWhen(task model.Task) string {
	if !task.Scheduled {
		return "backlog"
	}
	return FormatDate(task.Date) + " " + FormatSpan(task.StartHour, task.DurationHours)
}
