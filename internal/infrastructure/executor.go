package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

// LocalRunner executes external binaries for the subprocess-backed checks.
type LocalRunner struct{}

// NewLocalRunner builds a runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run implements ports.CommandRunner. A nonzero exit status is not an error:
// it comes back in CommandResult.ExitCode so callers can branch on it. The
// error return carries start failures (exec.ErrNotFound when the binary is
// absent) and context-deadline kills.
func (r *LocalRunner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if len(cmd.ExtraEnv) > 0 {
		c.Env = append(os.Environ(), cmd.ExtraEnv...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

var _ ports.CommandRunner = (*LocalRunner)(nil)
