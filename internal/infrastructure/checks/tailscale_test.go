package checks

import (
	"context"
	"testing"

	"github.com/kagebunshin/kbdiag/internal/domain"
)

func TestTailscaleCheckCountsOnlineNodes(t *testing.T) {
	status := `{
		"Peer": {
			"n1": {"Online": true},
			"n2": {"Online": false},
			"n3": {"Online": true}
		}
	}`
	runner := &stubRunner{result: domain.CommandResult{Stdout: status}}

	result := NewTailscaleCheck(runner).Check(context.Background())

	if result.Status != domain.StatusOK {
		t.Fatalf("Status = %v, want OK", result.Status)
	}
	// Two online peers plus the local node.
	if result.Details != "3 nodes online" {
		t.Errorf("Details = %q, want 3 nodes online", result.Details)
	}
	if runner.lastCmd.Name != "tailscale" {
		t.Errorf("command = %q, want tailscale", runner.lastCmd.Name)
	}
}

func TestTailscaleCheckNoPeers(t *testing.T) {
	runner := &stubRunner{result: domain.CommandResult{Stdout: `{"Peer": {}}`}}

	result := NewTailscaleCheck(runner).Check(context.Background())

	if result.Status != domain.StatusOK {
		t.Fatalf("Status = %v, want OK", result.Status)
	}
	if result.Details != "1 nodes online" {
		t.Errorf("Details = %q, want 1 nodes online", result.Details)
	}
}

func TestTailscaleCheckBinaryMissing(t *testing.T) {
	runner := &stubRunner{err: errNotFound}

	result := NewTailscaleCheck(runner).Check(context.Background())

	if result.Status != domain.StatusWarn {
		t.Fatalf("Status = %v, want WARN", result.Status)
	}
	if result.Details != "tailscale not in PATH" {
		t.Errorf("Details = %q, want tailscale not in PATH", result.Details)
	}
}

func TestTailscaleCheckNonzeroExit(t *testing.T) {
	runner := &stubRunner{result: domain.CommandResult{ExitCode: 1, Stderr: "not logged in"}}

	result := NewTailscaleCheck(runner).Check(context.Background())

	if result.Status != domain.StatusFail {
		t.Fatalf("Status = %v, want FAIL", result.Status)
	}
	if result.Details != "Status check failed" {
		t.Errorf("Details = %q, want Status check failed", result.Details)
	}
}

func TestTailscaleCheckMalformedOutput(t *testing.T) {
	runner := &stubRunner{result: domain.CommandResult{Stdout: "not json"}}

	result := NewTailscaleCheck(runner).Check(context.Background())

	if result.Status != domain.StatusFail {
		t.Fatalf("Status = %v, want FAIL", result.Status)
	}
}
