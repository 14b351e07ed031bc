package mcptest

import (
	"fmt"
	"sync"
	"time"
)

// taskRecord is the server-side view of a task.
type taskRecord struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Target    string         `json:"target,omitempty"`
	Status    string         `json:"status"`
	Priority  string         `json:"priority,omitempty"`
	Agent     string         `json:"agent,omitempty"`
	Result    map[string]any `json:"result,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`

	// polls counts GETs, driving the scripted status progression.
	polls int
}

type agentRecord struct {
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	HealthScore  float64  `json:"healthScore"`
	Capabilities []string `json:"capabilities,omitempty"`
	ActiveTasks  int      `json:"activeTasks"`
	TotalTasks   int      `json:"totalTasks"`
}

type webhookRecord struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

type pluginRecord struct {
	Name         string         `json:"name"`
	Version      string         `json:"version"`
	Status       string         `json:"status"`
	Capabilities []string       `json:"capabilities,omitempty"`
	Config       map[string]any `json:"config,omitempty"`
}

// store holds all mutable server state behind a single mutex.
type store struct {
	mu       sync.Mutex
	tasks    map[string]*taskRecord
	agents   map[string]*agentRecord
	webhooks map[string]*webhookRecord
	plugins  map[string]*pluginRecord
	nextTask int
	nextHook int

	// pollsPerStep controls how many GETs a task stays in each
	// non-terminal status before advancing. Zero freezes tasks in
	// their current status.
	pollsPerStep int
}

func newStore() *store {
	return &store{
		tasks:        make(map[string]*taskRecord),
		agents:       make(map[string]*agentRecord),
		webhooks:     make(map[string]*webhookRecord),
		plugins:      make(map[string]*pluginRecord),
		pollsPerStep: 1,
	}
}

func (s *store) createTask(taskType, target, priority, agent string) *taskRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTask++
	rec := &taskRecord{
		ID:        fmt.Sprintf("task-%d", s.nextTask),
		Type:      taskType,
		Target:    target,
		Status:    "queued",
		Priority:  priority,
		Agent:     agent,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.tasks[rec.ID] = rec
	return rec
}

// getTask returns the task, advancing its scripted status on each poll.
func (s *store) getTask(id string) (*taskRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok {
		return nil, false
	}

	rec.polls++
	if s.pollsPerStep > 0 && rec.polls > s.pollsPerStep {
		// The advancing poll counts as the first observation of the new status.
		rec.polls = 1
		switch rec.Status {
		case "queued":
			rec.Status = "running"
		case "running":
			rec.Status = "completed"
			rec.Result = map[string]any{"summary": "done"}
		}
	}

	copied := *rec
	return &copied, true
}

// setTaskStatus pins a task to a status, bypassing progression.
func (s *store) setTaskStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok {
		return false
	}
	rec.Status = status
	rec.polls = 0
	return true
}

func (s *store) cancelTask(id string) (terminal bool, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok {
		return false, false
	}
	switch rec.Status {
	case "completed", "failed", "cancelled":
		return true, true
	}
	rec.Status = "cancelled"
	return false, true
}

func (s *store) analytics() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStatus := make(map[string]int)
	for _, rec := range s.tasks {
		byStatus[rec.Status]++
	}
	return map[string]any{
		"total":     len(s.tasks),
		"by_status": byStatus,
	}
}
