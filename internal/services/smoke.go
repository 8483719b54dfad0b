package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const listModelsTimeout = 10 * time.Second

// SmokeService sends the catalogued prompts to a model and validates the
// responses. Probes are independent; one probe's failure or timeout never
// stops the rest of the run.
type SmokeService struct {
	Client   ports.ModelClient
	Probes   []domain.Probe
	Host     string
	Timeout  time.Duration
	Logger   ports.Logger
	Progress ports.ProgressReporter
}

// RunProbes executes the probe set against one model. Quick mode restricts
// the set to probes flagged quick in the catalogue.
func (s *SmokeService) RunProbes(ctx context.Context, model string, quick bool) domain.ProbeReport {
	runID := uuid.NewString()
	probes := s.selectProbes(quick)
	s.Logger.Debug("smoke run starting", map[string]interface{}{
		"run_id": runID,
		"model":  model,
		"probes": len(probes),
	})

	results := make([]domain.ProbeResult, 0, len(probes))
	for _, probe := range probes {
		result := s.runProbe(ctx, model, probe)
		s.Logger.Debug("probe finished", map[string]interface{}{
			"run_id":   runID,
			"probe":    result.Name,
			"passed":   result.Passed,
			"duration": result.Duration.Seconds(),
		})
		results = append(results, result)
	}

	return domain.ProbeReport{Model: model, Host: s.Host, Results: results}
}

// Models lists what the runtime has loaded, for --all mode.
func (s *SmokeService) Models(ctx context.Context) ([]domain.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, listModelsTimeout)
	defer cancel()
	return s.Client.ListModels(ctx)
}

func (s *SmokeService) selectProbes(quick bool) []domain.Probe {
	if !quick {
		return s.Probes
	}
	var subset []domain.Probe
	for _, p := range s.Probes {
		if p.Quick {
			subset = append(subset, p)
		}
	}
	return subset
}

// runProbe always produces exactly one result. Generation errors (network,
// timeout, malformed response) become a failed result carrying the
// truncated error text; the elapsed time is recorded either way.
func (s *SmokeService) runProbe(ctx context.Context, model string, probe domain.Probe) domain.ProbeResult {
	if s.Progress != nil {
		s.Progress.ProbeStarted(probe.Name)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	start := time.Now()
	response, err := s.Client.Generate(genCtx, model, probe.Prompt)
	duration := time.Since(start)
	cancel()

	var result domain.ProbeResult
	if err != nil {
		result = domain.ProbeResult{
			Name:     probe.Name,
			Passed:   false,
			Duration: duration,
			Details:  "Error: " + truncate(err.Error(), 40),
		}
	} else {
		passed, details := probe.Validate(response)
		result = domain.ProbeResult{
			Name:     probe.Name,
			Passed:   passed,
			Duration: duration,
			Details:  details,
			Response: response,
		}
	}

	if s.Progress != nil {
		s.Progress.ProbeFinished(result)
	}
	return result
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
