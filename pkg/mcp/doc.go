// Package mcp provides a Go SDK for driving an MCP task-orchestration server
// over HTTP: querying status and health, managing worker agents, submitting
// and tracking asynchronous tasks, invoking AI-assisted code operations, and
// subscribing to event webhooks.
//
// # Getting Started
//
// Create one long-lived client per process and share it; a Client holds no
// mutable state after construction and is safe for concurrent use:
//
//	client, err := mcp.NewClient("http://localhost:8765")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Submitting and Tracking Tasks
//
// Submit a task:
//
//	info, err := client.SubmitTask(ctx, mcp.TaskSubmission{
//	    Type:     "code_analysis",
//	    Target:   "main.go",
//	    Priority: mcp.PriorityHigh,
//	})
//
// The SDK builds in no polling loop; callers own the poll cadence. The
// optional TaskTracker keeps the observed status monotonic across polls:
//
//	tracker := client.TrackTask(info.ID)
//	for !tracker.Done() {
//	    time.Sleep(2 * time.Second)
//	    if _, err := tracker.Refresh(ctx); err != nil {
//	        break
//	    }
//	}
//
// Cancel a task (rejected once it has reached a terminal state):
//
//	ack, err := tracker.Cancel(ctx)
//
// # Error Handling
//
// Every failure is returned as one of two typed errors, never logged and
// swallowed inside the SDK:
//
//	_, err := client.GetTask(ctx, id)
//	if mcp.IsConnectionError(err) {
//	    // no usable HTTP response: DNS, refused, timeout, TLS
//	}
//	if apiErr, ok := mcp.AsMCPError(err); ok {
//	    // server-reported failure: apiErr.StatusCode, apiErr.Message,
//	    // apiErr.RawResponse
//	}
//
// # Retries
//
// Connection-level failures and 5xx responses are retried with exponential
// backoff and jitter, up to WithMaxRetries additional attempts; 4xx responses
// are surfaced immediately. The per-call timeout (WithTimeout, default 30s)
// bounds the whole attempt sequence, and cancelling the call context aborts
// the in-flight attempt and any pending backoff sleep.
//
// Retries apply uniformly to all methods, including non-idempotent POSTs: a
// retried submission can create a duplicate task if the original request
// succeeded but its response was lost. This is a documented, accepted risk;
// see SubmitTask.
package mcp
