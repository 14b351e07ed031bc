package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAgents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agents/status", r.URL.Path)
		// Agent lists arrive under the "agents" envelope key.
		w.Write([]byte(`{"ok":true,"agents":[
			{"name":"builder","status":"active","healthScore":0.98,"capabilities":["build","test"],"activeTasks":2,"totalTasks":40},
			{"name":"linter","status":"idle","healthScore":1.0,"capabilities":["lint"]}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "builder", agents[0].Name)
	assert.InDelta(t, 0.98, agents[0].HealthScore, 1e-9)
	assert.Equal(t, []string{"build", "test"}, agents[0].Capabilities)
	assert.Equal(t, 2, agents[0].ActiveTasks)
}

func TestGetAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agents/builder", r.URL.Path)
		w.Write([]byte(`{"ok":true,"data":{"name":"builder","status":"active","lastSeen":"2026-08-24T10:00:00Z"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	agent, err := client.GetAgent(context.Background(), "builder")
	require.NoError(t, err)
	assert.Equal(t, "builder", agent.Name)
	assert.Equal(t, "active", agent.Status)
}

func TestRegisterAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/agents", r.URL.Path)

		var body registerAgentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deployer", body.Name)
		assert.Equal(t, []string{"deploy", "rollback"}, body.Capabilities)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"data":{"name":"deployer","status":"registered","capabilities":["deploy","rollback"]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	agent, err := client.RegisterAgent(context.Background(), "deployer", []string{"deploy", "rollback"})
	require.NoError(t, err)
	assert.Equal(t, "registered", agent.Status)
}
