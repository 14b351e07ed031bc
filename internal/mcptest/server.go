// Package mcptest provides an in-memory MCP server for tests.
//
// The server speaks the same JSON envelope as a real deployment:
// every response is {"ok": bool, ...} with the payload under one of
// the data, status, agents, or analytics keys and failures reported
// under error. Tasks progress queued -> running -> completed as they
// are polled, one step per GET by default.
package mcptest

import (
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// Server is an in-memory MCP server backed by httptest.
type Server struct {
	httpServer *httptest.Server
	store      *store
}

// NewServer starts a mock MCP server. Callers must Close it.
func NewServer() *Server {
	st := newStore()

	r := chi.NewRouter()
	h := &handlers{store: st}

	r.Get("/status", h.serverStatus)
	r.Get("/health", h.health)

	r.Get("/api/agents/status", h.listAgents)
	r.Post("/agents", h.registerAgent)
	r.Get("/agents/{name}", h.getAgent)

	r.Post("/run", h.submitTask)
	r.Get("/tasks/{id}", h.getTask)
	r.Post("/tasks/{id}/cancel", h.cancelTask)
	r.Get("/api/tasks/analytics", h.taskAnalytics)

	r.Post("/ai/analyze", h.aiAnalyze)
	r.Post("/ai/predict", h.aiPredict)
	r.Post("/ai/generate", h.aiGenerate)

	r.Post("/webhooks", h.registerWebhook)
	r.Get("/webhooks", h.listWebhooks)
	r.Delete("/webhooks/{id}", h.deleteWebhook)

	r.Get("/plugins", h.listPlugins)
	r.Get("/plugins/{name}", h.getPlugin)
	r.Post("/plugins/install", h.installPlugin)
	r.Post("/plugins/{name}/uninstall", h.uninstallPlugin)

	return &Server{
		httpServer: httptest.NewServer(r),
		store:      st,
	}
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts down the server.
func (s *Server) Close() {
	s.httpServer.Close()
}

// SetPollsPerStep controls how many GETs a task stays in each
// non-terminal status before advancing. Zero freezes all tasks.
func (s *Server) SetPollsPerStep(n int) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.pollsPerStep = n
}

// SetTaskStatus pins an existing task to the given status.
func (s *Server) SetTaskStatus(id, status string) bool {
	return s.store.setTaskStatus(id, status)
}

// SeedAgent registers an agent directly in the store.
func (s *Server) SeedAgent(name, status string, healthScore float64, capabilities ...string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.agents[name] = &agentRecord{
		Name:         name,
		Status:       status,
		HealthScore:  healthScore,
		Capabilities: capabilities,
	}
}

// SeedPlugin installs a plugin directly in the store.
func (s *Server) SeedPlugin(name, version, status string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.plugins[name] = &pluginRecord{
		Name:    name,
		Version: version,
		Status:  status,
	}
}
