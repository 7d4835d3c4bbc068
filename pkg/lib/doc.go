// Package lib provides a programmatic SDK for managing schedm schedules.
//
// The SDK wraps the same services the schedm CLI uses: tasks, persons, the
// backlog and the composed week grid, backed by a SQLite database.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Add a person and a task with quick-add text.
//	client.AddPerson(ctx, "Ada", "1001")
//	task, _ := client.AddTask(ctx, "Oxygen maintenance @1001 tomorrow 9:30-11 !urgent")
//
//	fmt.Println(task.ID, task.Title)
//
// # Tasks
//
// Tasks are created from quick-add text ([Client.AddTask]) and then managed
// by ID: move them around the grid or to the backlog ([Client.MoveTask]),
// advance their status ([Client.CycleTaskStatus], [Client.SetTaskStatus]),
// list them with filters ([Client.ListTasks]) or delete them
// ([Client.RemoveTask]).
//
//	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
//	client.MoveTask(ctx, task.ID, lib.MoveTaskOpts{Date: &day})
//	client.CycleTaskStatus(ctx, task.ID)
//
// # The Grid
//
// [Client.Grid] composes the week view: one row per active person, one cell
// per day. Tasks inside a cell are assigned to parallel tracks so overlapping
// spans never share a lane, and each cell reports the pixel height it needs.
//
//	g, _ := client.Grid(ctx, nil) // Today, 7 days.
//	for _, row := range g.Rows {
//	    fmt.Printf("%s needs %d px\n", row.Person.Name, row.Height)
//	}
//
// The track layout engine is also exposed directly for callers that bring
// their own intervals, see [AssignTracks].
//
// # Importing
//
// [Client.ImportSchedule] bulk-loads persons and tasks from a YAML document:
//
//	client.ImportSchedule(ctx, os.DirFS("."), "schedule.yaml")
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Resource does not exist.
//   - [ErrAlreadyExists]: Resource with the same ID or name already exists.
//   - [ErrNotValid]: Invalid input or operation (e.g. a backlog move combined with a placement).
//
// # Testing
//
// Use an in-memory store to write tests without touching the filesystem:
//
//	client, _ := lib.New(ctx, lib.Config{InMemory: true})
//	defer client.Close()
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. The
// underlying storage uses SQLite with WAL mode (or a mutex-guarded map when
// InMemory is set).
package lib
