package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/schedm/schedm/internal/app/importer"
	"github.com/schedm/schedm/internal/printer"
	storageio "github.com/schedm/schedm/internal/storage/io"
	"github.com/schedm/schedm/internal/storage/sqlite"
)

type ImportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	file string
}

// NewImportCommand returns the import command.
func NewImportCommand(rootCmd *RootCommand, app *kingpin.Application) *ImportCommand {
	c := &ImportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("import", "Import a YAML schedule document (roster + tasks).")
	c.Cmd.Flag("file", "Path to the schedule YAML file.").Short('f').Required().StringVar(&c.file)

	return c
}

func (c ImportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ImportCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	abs, err := filepath.Abs(c.file)
	if err != nil {
		return fmt.Errorf("could not resolve file path: %w", err)
	}
	loader := storageio.NewScheduleYAMLRepository(os.DirFS(filepath.Dir(abs)))

	svc, err := importer.NewService(importer.ServiceConfig{
		Repository: repo,
		Loader:     loader,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	result, err := svc.Run(ctx, importer.Request{Path: filepath.Base(abs)})
	if err != nil {
		return fmt.Errorf("could not import schedule: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	msg := fmt.Sprintf("Imported %d persons and %d tasks", result.Persons, result.Tasks)
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
