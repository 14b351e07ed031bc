package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/run", r.URL.Path)

		var sub TaskSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "code_analysis", sub.Type)
		assert.Equal(t, "main.go", sub.Target)
		assert.Equal(t, PriorityHigh, sub.Priority)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"data":{"id":"task-123","status":"queued"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	info, err := client.SubmitTask(context.Background(), TaskSubmission{
		Type:     "code_analysis",
		Target:   "main.go",
		Priority: PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "task-123", info.ID)
	assert.Equal(t, StatusQueued, info.Status)
}

func TestSubmitTask_InvalidType(t *testing.T) {
	// The server's 400 is surfaced as an MCPError with zero retries.
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error":"invalid type"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithMaxRetries(3), WithRetryDelay(time.Millisecond))
	_, err := client.SubmitTask(context.Background(), TaskSubmission{
		Type:     "code_analysis",
		Target:   "main.go",
		Priority: PriorityHigh,
	})
	require.Error(t, err)

	mcpErr, ok := AsMCPError(err)
	require.True(t, ok, "expected MCPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, mcpErr.StatusCode)
	assert.Equal(t, "invalid type", mcpErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetTask_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"ok":false,"error":"Task task-missing not found"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetTask(context.Background(), "task-missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListTasks_AggregateShape(t *testing.T) {
	// Some deployments return aggregate analytics, not a list.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/analytics", r.URL.Path)
		assert.Equal(t, "running", r.URL.Query().Get("status"))
		assert.Equal(t, "agent-1", r.URL.Query().Get("agent"))
		w.Write([]byte(`{"ok":true,"analytics":{"total":17,"by_status":{"running":3,"queued":14}}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	listing, err := client.ListTasks(context.Background(),
		WithStatusFilter(StatusRunning),
		WithAgentFilter("agent-1"),
	)
	require.NoError(t, err)

	analytics, ok := listing.Analytics()
	require.True(t, ok)
	assert.Equal(t, float64(17), analytics["total"])

	_, ok = listing.Tasks()
	assert.False(t, ok, "aggregate payload must not decode as a task list")
}

func TestListTasks_ListShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"data":[{"id":"task-1","status":"queued","type":"lint"},{"id":"task-2","status":"running","type":"test"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	listing, err := client.ListTasks(context.Background())
	require.NoError(t, err)

	tasks, ok := listing.Tasks()
	require.True(t, ok)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Equal(t, StatusRunning, tasks[1].Status)
}

func TestCancelTask(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
	}{
		{
			name:       "cancel running task",
			statusCode: http.StatusOK,
			body:       `{"ok":true,"data":{"result":"cancelled"}}`,
		},
		{
			name:       "cancel terminal task",
			statusCode: http.StatusConflict,
			body:       `{"ok":false,"error":"task already finished"}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/tasks/task-123/cancel", r.URL.Path)
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			ack, err := client.CancelTask(context.Background(), "task-123")
			if tt.wantErr {
				require.Error(t, err)
				mcpErr, ok := AsMCPError(err)
				require.True(t, ok)
				assert.Equal(t, "task already finished", mcpErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cancelled", ack["result"])
		})
	}
}
