package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolforge/mcp-go/pkg/mcp"
)

func TestErrors_SubmitWithoutType(t *testing.T) {
	s := setupE2E(t)
	defer s.cleanup()

	_, err := s.client.SubmitTask(context.Background(), mcp.TaskSubmission{Target: "main.go"})
	require.Error(t, err)

	mcpErr, ok := mcp.AsMCPError(err)
	require.True(t, ok, "expected MCPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, mcpErr.StatusCode)
	assert.Equal(t, "invalid type", mcpErr.Message)
}

func TestErrors_UnknownTask(t *testing.T) {
	s := setupE2E(t)
	defer s.cleanup()

	_, err := s.client.GetTask(context.Background(), "task-missing")
	require.Error(t, err)
	assert.True(t, mcp.IsNotFound(err))

	_, err = s.client.CancelTask(context.Background(), "task-missing")
	require.Error(t, err)
	assert.True(t, mcp.IsNotFound(err))
}

func TestErrors_CancelFinishedTask(t *testing.T) {
	s := setupE2E(t)
	defer s.cleanup()
	ctx := context.Background()

	info, err := s.client.SubmitTask(ctx, mcp.TaskSubmission{Type: "lint"})
	require.NoError(t, err)
	require.True(t, s.server.SetTaskStatus(info.ID, "completed"))

	_, err = s.client.CancelTask(ctx, info.ID)
	require.Error(t, err)

	mcpErr, ok := mcp.AsMCPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, mcpErr.StatusCode)
}

func TestErrors_ServerDown(t *testing.T) {
	s := setupE2E(t)
	s.cleanup() // stop the server before the call

	_, err := s.client.GetStatus(context.Background())
	require.Error(t, err)
	assert.True(t, mcp.IsConnectionError(err))
	assert.False(t, mcp.IsMCPError(err))
}
