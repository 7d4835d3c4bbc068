package schedm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedm/schedm/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "schedm"
	}

	// If relative, the caller should pass an absolute path via the env var,
	// because go test changes the CWD to the test package directory.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("SCHEDM_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("schedm binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "SCHEDM_INTEGRATION"
		envBinary     = "SCHEDM_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) == "" {
		t.Skipf("integration tests disabled, set %s to enable", envActivation)
	}

	config := Config{
		Binary: os.Getenv(envBinary),
	}
	if err := config.defaults(); err != nil {
		t.Skipf("invalid integration test config: %s", err)
	}

	return config
}

// testEnv returns the env overrides pointing the binary at a temp database.
func testEnv(t *testing.T) []string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "schedm.db")
	return []string{"SCHEDM_DB_PATH=" + dbPath}
}

// run executes the binary and fails the test on error.
func run(t *testing.T, config Config, env []string, cmdArgs string) string {
	t.Helper()

	stdout, stderr, err := testutils.RunSchedm(context.Background(), env, config.Binary, cmdArgs)
	require.NoError(t, err, "command %q failed: %s", cmdArgs, stderr)

	return string(stdout)
}

// runArgs executes the binary with pre-split args and fails the test on error.
func runArgs(t *testing.T, config Config, env []string, args []string) string {
	t.Helper()

	stdout, stderr, err := testutils.RunSchedmArgs(context.Background(), env, config.Binary, args)
	require.NoError(t, err, "command %v failed: %s", args, stderr)

	return string(stdout)
}
