package mcptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	store *store
}

func (h *handlers) serverStatus(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	active := 0
	for _, rec := range h.store.tasks {
		if rec.Status == "queued" || rec.Status == "running" {
			active++
		}
	}
	agents := len(h.store.agents)
	h.store.mu.Unlock()

	// Status payloads arrive under the "status" key, not "data".
	writeOK(w, http.StatusOK, "status", map[string]any{
		"status":      "ok",
		"version":     "1.0.0",
		"uptime":      3600.0,
		"activeTasks": active,
		"agents":      agents,
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, "data", map[string]any{
		"status": "healthy",
		"checks": map[string]string{"queue": "ok", "agents": "ok"},
	})
}

func (h *handlers) listAgents(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	names := make([]string, 0, len(h.store.agents))
	for name := range h.store.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	agents := make([]*agentRecord, 0, len(names))
	for _, name := range names {
		agents = append(agents, h.store.agents[name])
	}
	h.store.mu.Unlock()

	writeOK(w, http.StatusOK, "agents", agents)
}

func (h *handlers) getAgent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.store.mu.Lock()
	rec, ok := h.store.agents[name]
	h.store.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("agent %s not found", name))
		return
	}
	writeOK(w, http.StatusOK, "data", rec)
}

func (h *handlers) registerAgent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		Capabilities []string `json:"capabilities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "agent name is required")
		return
	}

	rec := &agentRecord{
		Name:         req.Name,
		Status:       "registered",
		HealthScore:  1.0,
		Capabilities: req.Capabilities,
	}
	h.store.mu.Lock()
	h.store.agents[req.Name] = rec
	h.store.mu.Unlock()

	writeOK(w, http.StatusCreated, "data", rec)
}

func (h *handlers) submitTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type     string `json:"type"`
		Target   string `json:"target"`
		Priority string `json:"priority"`
		Agent    string `json:"agent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "invalid type")
		return
	}

	rec := h.store.createTask(req.Type, req.Target, req.Priority, req.Agent)
	writeOK(w, http.StatusCreated, "data", rec)
}

func (h *handlers) getTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.store.getTask(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task %s not found", id))
		return
	}
	writeOK(w, http.StatusOK, "data", rec)
}

func (h *handlers) cancelTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	terminal, found := h.store.cancelTask(id)
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Task %s not found", id))
		return
	}
	if terminal {
		writeError(w, http.StatusConflict, fmt.Sprintf("task %s already finished", id))
		return
	}
	writeOK(w, http.StatusOK, "data", map[string]string{"result": "cancelled"})
}

func (h *handlers) taskAnalytics(w http.ResponseWriter, r *http.Request) {
	// Analytics payloads arrive under the "analytics" key.
	writeOK(w, http.StatusOK, "analytics", h.store.analytics())
}

func (h *handlers) aiAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}
	writeOK(w, http.StatusOK, "data", map[string]any{
		"issues":     []any{},
		"complexity": 1,
		"lines":      len(req.Code),
	})
}

func (h *handlers) aiPredict(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, "data", map[string]any{
		"latency_ms": 42,
		"confidence": 0.9,
	})
}

func (h *handlers) aiGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Description == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}
	writeOK(w, http.StatusOK, "data", map[string]any{
		"code":     "package main\n",
		"language": "go",
	})
}

func (h *handlers) registerWebhook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL    string   `json:"url"`
		Events []string `json:"events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	h.store.mu.Lock()
	h.store.nextHook++
	rec := &webhookRecord{
		ID:     fmt.Sprintf("wh-%d", h.store.nextHook),
		URL:    req.URL,
		Events: req.Events,
	}
	h.store.webhooks[rec.ID] = rec
	h.store.mu.Unlock()

	writeOK(w, http.StatusCreated, "data", map[string]string{"webhookId": rec.ID})
}

func (h *handlers) listWebhooks(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	hooks := make([]*webhookRecord, 0, len(h.store.webhooks))
	for _, rec := range h.store.webhooks {
		hooks = append(hooks, rec)
	}
	h.store.mu.Unlock()

	sort.Slice(hooks, func(i, j int) bool { return hooks[i].ID < hooks[j].ID })
	writeOK(w, http.StatusOK, "data", hooks)
}

func (h *handlers) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.store.mu.Lock()
	_, ok := h.store.webhooks[id]
	delete(h.store.webhooks, id)
	h.store.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("webhook %s not found", id))
		return
	}
	writeOK(w, http.StatusOK, "data", map[string]string{"result": "deleted"})
}

func (h *handlers) listPlugins(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	plugins := make([]*pluginRecord, 0, len(h.store.plugins))
	for _, rec := range h.store.plugins {
		plugins = append(plugins, rec)
	}
	h.store.mu.Unlock()

	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	writeOK(w, http.StatusOK, "data", plugins)
}

func (h *handlers) getPlugin(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.store.mu.Lock()
	rec, ok := h.store.plugins[name]
	h.store.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("plugin %s not found", name))
		return
	}
	writeOK(w, http.StatusOK, "data", rec)
}

func (h *handlers) installPlugin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string         `json:"name"`
		Config map[string]any `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "plugin name is required")
		return
	}

	rec := &pluginRecord{
		Name:    req.Name,
		Version: "1.0.0",
		Status:  "enabled",
		Config:  req.Config,
	}
	h.store.mu.Lock()
	h.store.plugins[req.Name] = rec
	h.store.mu.Unlock()

	writeOK(w, http.StatusOK, "data", rec)
}

func (h *handlers) uninstallPlugin(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.store.mu.Lock()
	_, ok := h.store.plugins[name]
	delete(h.store.plugins, name)
	h.store.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("plugin %s is not installed", name))
		return
	}
	writeOK(w, http.StatusOK, "data", map[string]string{"result": "uninstalled"})
}
