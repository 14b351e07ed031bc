package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	// StatusQueued indicates a task is waiting to be picked up.
	StatusQueued TaskStatus = "queued"
	// StatusRunning indicates a task is being processed.
	StatusRunning TaskStatus = "running"
	// StatusCompleted indicates a task finished successfully. Terminal.
	StatusCompleted TaskStatus = "completed"
	// StatusFailed indicates a task finished with an error. Terminal.
	StatusFailed TaskStatus = "failed"
	// StatusCancelled indicates a task was cancelled before finishing.
	// Terminal; reachable from queued or running only.
	StatusCancelled TaskStatus = "cancelled"
)

// ValidStatuses contains all valid task status values.
var ValidStatuses = []TaskStatus{
	StatusQueued, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled,
}

// IsValid checks if the status is a valid task status.
func (s TaskStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// rank orders statuses along the lifecycle: queued < running < terminal.
// Transitions are monotonic; a task never moves to a lower rank.
func (s TaskStatus) rank() int {
	switch s {
	case StatusQueued:
		return 0
	case StatusRunning:
		return 1
	case StatusCompleted, StatusFailed, StatusCancelled:
		return 2
	}
	return -1
}

// CanTransition reports whether a task may move from one status to another.
// Terminal states allow no transition; cancellation is reachable from queued
// or running only. Forward skips (queued directly to a terminal state) are
// allowed because the client may simply not have observed the intermediate
// state.
func CanTransition(from, to TaskStatus) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	return to.rank() > from.rank()
}

// TaskTracker observes a single task's lifecycle across polls, enforcing
// monotonic status progression: once a status has been observed, a stale
// server read reporting an earlier state is never surfaced, and a terminal
// state sticks.
//
// A tracker is the caller's opt-in polling state; the Client itself caches
// nothing between calls. The caller owns the poll cadence; the tracker
// starts no goroutines. A tracker is safe for concurrent use.
type TaskTracker struct {
	c  *Client
	id string

	mu   sync.Mutex
	last TaskStatus
	info *TaskInfo
}

// TrackTask returns a tracker for the given task ID. The tracker has no
// observed state until the first Refresh.
func (c *Client) TrackTask(id string) *TaskTracker {
	return &TaskTracker{c: c, id: id}
}

// ID returns the tracked task's ID.
func (t *TaskTracker) ID() string { return t.id }

// Refresh fetches the task's current state and merges it monotonically with
// what has been observed so far. If the server reports a state earlier than
// the highest observed one, the returned TaskInfo keeps the observed status.
func (t *TaskTracker) Refresh(ctx context.Context) (*TaskInfo, error) {
	info, err := t.c.GetTask(ctx, t.id)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	merged := *info
	switch {
	case t.last == "":
		// First observation.
	case t.last.IsTerminal():
		merged.Status = t.last
	case info.Status.rank() < t.last.rank():
		// Stale read; the lifecycle never moves backwards.
		merged.Status = t.last
	}

	t.last = merged.Status
	t.info = &merged
	return &merged, nil
}

// Status returns the last observed status, or "" before the first Refresh.
func (t *TaskTracker) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Info returns the last observed task state, or nil before the first Refresh.
func (t *TaskTracker) Info() *TaskInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.info
}

// Done reports whether the task has reached a terminal state.
func (t *TaskTracker) Done() bool {
	return t.Status().IsTerminal()
}

// Cancel cancels the tracked task. If a terminal state has already been
// observed the call is rejected locally with an MCPError, without a round
// trip: the task is finished, there is nothing to cancel.
func (t *TaskTracker) Cancel(ctx context.Context) (map[string]string, error) {
	t.mu.Lock()
	last := t.last
	t.mu.Unlock()

	if last.IsTerminal() {
		return nil, &MCPError{
			StatusCode: http.StatusConflict,
			Message:    fmt.Sprintf("task %s is already %s, nothing to cancel", t.id, last),
		}
	}

	ack, err := t.c.CancelTask(ctx, t.id)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.last = StatusCancelled
	if t.info != nil {
		info := *t.info
		info.Status = StatusCancelled
		t.info = &info
	}
	t.mu.Unlock()

	return ack, nil
}
