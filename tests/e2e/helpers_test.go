package e2e

import (
	"testing"
	"time"

	"github.com/toolforge/mcp-go/internal/mcptest"
	"github.com/toolforge/mcp-go/pkg/mcp"
)

// E2ETestSuite provides test infrastructure for end-to-end tests.
type E2ETestSuite struct {
	t      *testing.T
	server *mcptest.Server
	client *mcp.Client
}

// setupE2E creates a new E2E test suite with a running mock server
// and a client pointed at it.
func setupE2E(t *testing.T, opts ...mcp.ClientOption) *E2ETestSuite {
	t.Helper()

	server := mcptest.NewServer()

	clientOpts := append([]mcp.ClientOption{
		mcp.WithMaxRetries(0),
		mcp.WithRetryDelay(time.Millisecond),
	}, opts...)

	client, err := mcp.NewClient(server.URL(), clientOpts...)
	if err != nil {
		server.Close()
		t.Fatalf("Failed to create client: %v", err)
	}

	return &E2ETestSuite{
		t:      t,
		server: server,
		client: client,
	}
}

// cleanup tears down the test suite.
func (s *E2ETestSuite) cleanup() {
	if s.server != nil {
		s.server.Close()
	}
}
