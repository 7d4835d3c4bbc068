package printer

import (
	"github.com/schedm/schedm/internal/app/grid"
	"github.com/schedm/schedm/internal/model"
)

// Printer knows how to print schedule information in different formats.
type Printer interface {
	PrintTaskList(tasks []model.Task) error
	PrintTask(task model.Task) error
	PrintPersonList(persons []model.Person) error
	PrintGrid(g grid.Grid) error
	PrintBacklog(tasks []model.Task) error
	PrintMessage(msg string) error
}
