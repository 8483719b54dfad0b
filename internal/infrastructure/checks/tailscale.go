package checks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const tailscaleTimeout = 5 * time.Second

// TailscaleCheck asks the mesh-network CLI for machine-readable status and
// counts online nodes.
type TailscaleCheck struct {
	Runner ports.CommandRunner
}

// NewTailscaleCheck builds the check.
func NewTailscaleCheck(runner ports.CommandRunner) *TailscaleCheck {
	return &TailscaleCheck{Runner: runner}
}

func (c *TailscaleCheck) Name() string { return "Tailscale" }

type tailscaleStatus struct {
	Peer map[string]struct {
		Online bool `json:"Online"`
	} `json:"Peer"`
}

// Check runs `tailscale status --json`. The local node is always counted on
// top of the online peers.
func (c *TailscaleCheck) Check(ctx context.Context) domain.HealthResult {
	ctx, cancel := context.WithTimeout(ctx, tailscaleTimeout)
	defer cancel()

	result, err := c.Runner.Run(ctx, domain.Command{
		Name: "tailscale",
		Args: []string{"status", "--json"},
	})
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return warn(c.Name(), "tailscale not in PATH")
	case err != nil:
		return fail(c.Name(), truncate(err.Error(), 50))
	case result.ExitCode != 0:
		return fail(c.Name(), "Status check failed")
	}

	var status tailscaleStatus
	if err := json.Unmarshal([]byte(result.Stdout), &status); err != nil {
		return fail(c.Name(), truncate(err.Error(), 50))
	}

	online := 0
	for _, peer := range status.Peer {
		if peer.Online {
			online++
		}
	}
	return ok(c.Name(), fmt.Sprintf("%d nodes online", online+1))
}

var _ ports.HealthChecker = (*TailscaleCheck)(nil)
