package checks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const postgresTimeout = 10 * time.Second

// PostgresCheck verifies database connectivity by running SELECT 1 through
// the psql binary. Shelling out instead of opening a driver connection lets
// a missing client degrade to WARN rather than FAIL.
type PostgresCheck struct {
	Host     string
	User     string
	Database string
	Runner   ports.CommandRunner
}

// NewPostgresCheck builds the check.
func NewPostgresCheck(host, user, database string, runner ports.CommandRunner) *PostgresCheck {
	return &PostgresCheck{Host: host, User: user, Database: database, Runner: runner}
}

func (c *PostgresCheck) Name() string { return "PostgreSQL" }

// Check runs psql non-interactively (-w disables the password prompt, the
// password comes from ~/.pgpass).
func (c *PostgresCheck) Check(ctx context.Context) domain.HealthResult {
	ctx, cancel := context.WithTimeout(ctx, postgresTimeout)
	defer cancel()

	cmd := domain.Command{
		Name: "psql",
		Args: []string{
			"-h", c.Host,
			"-U", c.User,
			"-d", c.Database,
			"-c", "SELECT 1",
			"-t", "-A", "-w",
		},
		ExtraEnv: []string{"PGPASSFILE=" + pgpassPath()},
	}

	result, err := c.Runner.Run(ctx, cmd)
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return warn(c.Name(), "psql not in PATH")
	case ctx.Err() != nil:
		return fail(c.Name(), "Connection timeout")
	case err != nil:
		return fail(c.Name(), truncate(err.Error(), 50))
	case result.ExitCode != 0:
		return fail(c.Name(), truncate(strings.TrimSpace(result.Stderr), 50))
	default:
		return ok(c.Name(), fmt.Sprintf("%s@%s", c.Database, c.Host))
	}
}

func pgpassPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pgpass"
	}
	return filepath.Join(home, ".pgpass")
}

var _ ports.HealthChecker = (*PostgresCheck)(nil)
