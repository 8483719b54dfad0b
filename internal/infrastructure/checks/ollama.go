package checks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const ollamaTimeout = 10 * time.Second

// OllamaCheck verifies the LLM runtime is reachable and has models loaded.
type OllamaCheck struct {
	Client ports.ModelClient
}

// NewOllamaCheck builds the check.
func NewOllamaCheck(client ports.ModelClient) *OllamaCheck {
	return &OllamaCheck{Client: client}
}

func (c *OllamaCheck) Name() string { return "Ollama" }

// Check lists models; an empty list means the runtime is up but useless,
// which is a WARN rather than a FAIL.
func (c *OllamaCheck) Check(ctx context.Context) domain.HealthResult {
	ctx, cancel := context.WithTimeout(ctx, ollamaTimeout)
	defer cancel()

	models, err := c.Client.ListModels(ctx)
	if err != nil {
		return fail(c.Name(), "Unreachable: "+truncate(err.Error(), 50))
	}
	if len(models) == 0 {
		return warn(c.Name(), "No models loaded")
	}

	names := make([]string, 0, 3)
	for _, m := range models {
		if len(names) == 3 {
			break
		}
		names = append(names, m.Name)
	}
	return ok(c.Name(), fmt.Sprintf("%d models: %s", len(models), strings.Join(names, ", ")))
}

var _ ports.HealthChecker = (*OllamaCheck)(nil)
