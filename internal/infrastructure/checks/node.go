package checks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/kagebunshin/kbdiag/internal/domain"
	"github.com/kagebunshin/kbdiag/internal/ports"
)

const nodeTimeout = 3 * time.Second

// NodeCheck tests raw TCP reachability of one host's SSH port.
type NodeCheck struct {
	Node   domain.Node
	Dialer *net.Dialer
}

// NewNodeCheck builds the check for one configured node.
func NewNodeCheck(node domain.Node) *NodeCheck {
	return &NodeCheck{
		Node:   node,
		Dialer: &net.Dialer{Timeout: nodeTimeout},
	}
}

func (c *NodeCheck) Name() string {
	return fmt.Sprintf("Node: %s", c.Node.Label)
}

// Check dials host:port once. No banner exchange; a completed handshake is
// enough to call the node reachable.
func (c *NodeCheck) Check(ctx context.Context) domain.HealthResult {
	addr := net.JoinHostPort(c.Node.Host, fmt.Sprintf("%d", c.Node.Port))

	conn, err := c.Dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fail(c.Name(), fmt.Sprintf("%s timeout", c.Node.Host))
		}
		return fail(c.Name(), fmt.Sprintf("%s port %d closed", c.Node.Host, c.Node.Port))
	}
	conn.Close()

	return ok(c.Name(), fmt.Sprintf("%s reachable", c.Node.Host))
}

var _ ports.HealthChecker = (*NodeCheck)(nil)
