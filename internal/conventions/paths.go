package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default schedm data directory name (relative to home).
	DefaultDataDir = ".schedm"
	// DBFile is the SQLite database filename inside the data directory.
	DBFile = "schedm.db"

	// DBPathEnvVar overrides the database path when set.
	DBPathEnvVar = "SCHEDM_DB_PATH"
)

// DefaultDBPath returns the default database path for a home directory.
func DefaultDBPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDataDir, DBFile)
}
