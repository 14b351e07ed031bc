package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// SubmitTask submits a task for processing. The returned TaskInfo carries the
// server-assigned ID and the initial status (queued). The server rejects
// submissions with a missing or invalid type.
//
// Submission is not idempotent: if a retried attempt succeeds after the
// original request reached the server but its response was lost, a duplicate
// task can be created. Callers for whom that matters should submit with
// retries disabled (WithMaxRetries(0)) and handle transient failures
// themselves.
func (c *Client) SubmitTask(ctx context.Context, task TaskSubmission) (*TaskInfo, error) {
	var info TaskInfo
	if err := c.call(ctx, http.MethodPost, "/run", task, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTask retrieves the current state of a task by ID. An unknown ID is the
// server's 404, surfaced as an MCPError.
func (c *Client) GetTask(ctx context.Context, id string) (*TaskInfo, error) {
	var info TaskInfo
	if err := c.call(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// TaskListing is the implementation-defined result of ListTasks. Some
// deployments return a task list, others an aggregate analytics object;
// callers must check which shape they received rather than assume a list.
type TaskListing struct {
	raw json.RawMessage
}

// Raw returns the unmodified payload.
func (l *TaskListing) Raw() json.RawMessage { return l.raw }

// Tasks returns the payload as a task list, if it has that shape.
func (l *TaskListing) Tasks() ([]TaskInfo, bool) {
	var tasks []TaskInfo
	if err := json.Unmarshal(l.raw, &tasks); err != nil {
		return nil, false
	}
	return tasks, true
}

// Analytics returns the payload as an aggregate analytics object, if it has
// that shape.
func (l *TaskListing) Analytics() (map[string]any, bool) {
	var analytics map[string]any
	if err := json.Unmarshal(l.raw, &analytics); err != nil {
		return nil, false
	}
	return analytics, true
}

// ListTasks lists tasks with optional status and agent filtering. The shape
// of the result is deployment-specific; see TaskListing.
func (c *Client) ListTasks(ctx context.Context, opts ...ListTasksOption) (*TaskListing, error) {
	options := &listTasksOptions{}
	for _, opt := range opts {
		opt(options)
	}

	path := "/api/tasks/analytics"
	params := url.Values{}
	if options.status != "" {
		params.Set("status", string(options.status))
	}
	if options.agent != "" {
		params.Set("agent", options.agent)
	}
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	payload, err := c.callRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return &TaskListing{raw: payload}, nil
}

// CancelTask cancels a queued or running task. Cancelling a task that has
// already reached a terminal state is an MCPError, not a silent success.
func (c *Client) CancelTask(ctx context.Context, id string) (map[string]string, error) {
	var ack map[string]string
	if err := c.call(ctx, http.MethodPost, "/tasks/"+url.PathEscape(id)+"/cancel", nil, &ack); err != nil {
		return nil, err
	}
	return ack, nil
}
