package checks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const apiTimeout = 5 * time.Second

// APICheck probes the knowledge-base API server's /health endpoint.
type APICheck struct {
	Host   string
	Client *http.Client
}

// NewAPICheck builds the check for the given base URL.
func NewAPICheck(host string, client *http.Client) *APICheck {
	if client == nil {
		client = &http.Client{}
	}
	return &APICheck{Host: host, Client: client}
}

func (c *APICheck) Name() string { return "API Server" }

// Check issues GET {host}/health. A 200 is OK, any other non-error status is
// a degraded WARN, transport failures and error statuses are FAIL.
func (c *APICheck) Check(ctx context.Context) domain.HealthResult {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Host+"/health", nil)
	if err != nil {
		return fail(c.Name(), truncate(err.Error(), 50))
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fail(c.Name(), "Connection failed: "+truncate(err.Error(), 50))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return ok(c.Name(), fmt.Sprintf("%s responding", c.Host))
	case resp.StatusCode < 400:
		return warn(c.Name(), fmt.Sprintf("Status %d", resp.StatusCode))
	default:
		return fail(c.Name(), fmt.Sprintf("Status %d", resp.StatusCode))
	}
}

var _ ports.HealthChecker = (*APICheck)(nil)
