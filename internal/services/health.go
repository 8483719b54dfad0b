// Package services holds the runners that orchestrate checks and probes.
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

// HealthService runs the configured checks sequentially, in declared order,
// and folds their results into one report. Checks cannot abort the run: a
// failing dependency is a FAIL row, not an error.
type HealthService struct {
	Checks []ports.HealthChecker
	Logger ports.Logger
}

// Run executes every check once and returns the ordered report.
func (s *HealthService) Run(ctx context.Context) domain.HealthReport {
	runID := uuid.NewString()
	s.Logger.Debug("health run starting", map[string]interface{}{
		"run_id": runID,
		"checks": len(s.Checks),
	})

	results := make([]domain.HealthResult, 0, len(s.Checks))
	for _, check := range s.Checks {
		result := check.Check(ctx)
		s.Logger.Debug("check finished", map[string]interface{}{
			"run_id":    runID,
			"component": result.Component,
			"status":    string(result.Status),
		})
		results = append(results, result)
	}

	report := domain.HealthReport{Results: results}
	s.Logger.Debug("health run finished", map[string]interface{}{
		"run_id":  runID,
		"overall": string(report.Overall()),
	})
	return report
}
