// Package ports defines the interfaces between the application core and its
// adapters. Services depend on these abstractions; the concrete HTTP client,
// subprocess runner and terminal renderer live under infrastructure.
package ports

import (
	"context"

	"github.com/kagebunshin/kbdiag/internal/domain"
)

// HealthChecker probes one infrastructure dependency. Check never returns an
// error: every failure mode is folded into the result's status and details.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) domain.HealthResult
}

// ModelClient talks to the local LLM runtime.
type ModelClient interface {
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// CommandRunner executes an external binary and captures its output.
// A nonzero exit is reported through CommandResult.ExitCode with a nil
// error; the error return is reserved for failures to run at all (missing
// binary, killed by context deadline).
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}

// ProgressReporter receives per-probe progress while a smoke test runs.
type ProgressReporter interface {
	ProbeStarted(name string)
	ProbeFinished(result domain.ProbeResult)
}

// Logger provides structured logging for the services. Reports are rendered
// separately; the logger only carries diagnostics.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
