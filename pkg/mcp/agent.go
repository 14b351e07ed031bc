package mcp

import (
	"context"
	"net/http"
	"net/url"
)

// ListAgents lists all known worker agents with their status.
func (c *Client) ListAgents(ctx context.Context) ([]AgentStatus, error) {
	var agents []AgentStatus
	if err := c.call(ctx, http.MethodGet, "/api/agents/status", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgent retrieves the status of a single agent by name.
func (c *Client) GetAgent(ctx context.Context, name string) (*AgentStatus, error) {
	var agent AgentStatus
	if err := c.call(ctx, http.MethodGet, "/agents/"+url.PathEscape(name), nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// RegisterAgent registers a new agent with the given capabilities and returns
// the server's view of it.
func (c *Client) RegisterAgent(ctx context.Context, name string, capabilities []string) (*AgentStatus, error) {
	body := registerAgentRequest{
		Name:         name,
		Capabilities: capabilities,
	}
	var agent AgentStatus
	if err := c.call(ctx, http.MethodPost, "/agents", body, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}
