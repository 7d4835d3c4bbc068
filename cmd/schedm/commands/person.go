package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/personadd"
	"github.com/schedm/schedm/internal/app/personlist"
	"github.com/schedm/schedm/internal/app/personremove"
	"github.com/schedm/schedm/internal/printer"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

// NewPersonCommand returns the person parent command.
func NewPersonCommand(app *kingpin.Application) *kingpin.CmdClause {
	return app.Command("person", "Manage the roster.")
}

type PersonAddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	name  string
	empID string
}

// NewPersonAddCommand returns the person add command.
func NewPersonAddCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *PersonAddCommand {
	c := &PersonAddCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("add", "Add a person (re-adding a known ID or name reactivates it).")
	c.Cmd.Arg("name", "Person name.").Required().StringVar(&c.name)
	c.Cmd.Flag("emp-id", "Explicit emp ID, next free numeric ID when omitted.").StringVar(&c.empID)

	return c
}

func (c PersonAddCommand) Name() string { return c.Cmd.FullCommand() }

func (c PersonAddCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := personadd.NewService(personadd.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	person, err := svc.Run(ctx, personadd.Request{Name: c.name, EmpID: c.empID})
	if err != nil {
		return fmt.Errorf("could not add person: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Person %s (%s) is active", person.EmpID, person.Name)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}

type PersonListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	all    bool
	format string
}

// NewPersonListCommand returns the person list command.
func NewPersonListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *PersonListCommand {
	c := &PersonListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List roster members.")
	c.Cmd.Flag("all", "Include deactivated persons.").BoolVar(&c.all)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c PersonListCommand) Name() string { return c.Cmd.FullCommand() }

func (c PersonListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := personlist.NewService(personlist.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	persons, err := svc.Run(ctx, personlist.Request{All: c.all})
	if err != nil {
		return fmt.Errorf("could not list persons: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintPersonList(persons); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}

type PersonRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	empID string
}

// NewPersonRmCommand returns the person rm command.
func NewPersonRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *PersonRmCommand {
	c := &PersonRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Deactivate a person (soft delete).")
	c.Cmd.Arg("emp-id", "Emp ID of the person.").Required().StringVar(&c.empID)

	return c
}

func (c PersonRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c PersonRmCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	svc, err := personremove.NewService(personremove.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx, personremove.Request{EmpID: c.empID}); err != nil {
		return fmt.Errorf("could not remove person: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Deactivated person %s", c.empID)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
