package checks

import (
	"context"
	"os/exec"
	"testing"

	"github.com/kagebunshin/kbdiag/internal/domain"
)

// stubRunner fakes subprocess execution for the psql and tailscale checks.
type stubRunner struct {
	result  domain.CommandResult
	err     error
	lastCmd domain.Command
}

func (s *stubRunner) Run(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	s.lastCmd = cmd
	return s.result, s.err
}

var errNotFound = &exec.Error{Name: "missing", Err: exec.ErrNotFound}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is far too long", 7, "this is"},
		{"héllo wörld", 5, "héllo"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
