package mcp

// TaskPriority represents the scheduling priority of a submitted task.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityNormal   TaskPriority = "normal"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// TaskSubmission describes a task to submit for processing. It is immutable
// once sent; the server assigns the task ID.
type TaskSubmission struct {
	Type       string         `json:"type"`
	Target     string         `json:"target,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Priority   TaskPriority   `json:"priority,omitempty"`
	Agent      string         `json:"agent,omitempty"`
}

// TaskInfo represents the server's view of a task at response time. It may be
// stale by the time the caller acts on it.
//
// Timestamps are kept as strings because deployments are not consistent about
// their format; callers that need time values parse them.
type TaskInfo struct {
	ID          string         `json:"id"`
	Status      TaskStatus     `json:"status"`
	Type        string         `json:"type"`
	Target      string         `json:"target,omitempty"`
	Agent       string         `json:"agent,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	CompletedAt string         `json:"completedAt,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
	Priority    TaskPriority   `json:"priority,omitempty"`
	Progress    float64        `json:"progress,omitempty"`
}

// ServerStatus represents server status information.
type ServerStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version,omitempty"`
	Uptime      float64 `json:"uptime,omitempty"`
	ActiveTasks int     `json:"activeTasks,omitempty"`
	Agents      int     `json:"agents,omitempty"`
	LastChecked string  `json:"lastChecked,omitempty"`
}

// AgentStatus represents the status of a worker agent.
type AgentStatus struct {
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	LastSeen     string   `json:"lastSeen,omitempty"`
	HealthScore  float64  `json:"healthScore,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	ActiveTasks  int      `json:"activeTasks,omitempty"`
	TotalTasks   int      `json:"totalTasks,omitempty"`
}

// CodeAnalysisRequest describes an AI-assisted code analysis request.
type CodeAnalysisRequest struct {
	Code     string            `json:"code"`
	Language string            `json:"language,omitempty"`
	Options  map[string]bool   `json:"options,omitempty"`
	Context  map[string]string `json:"context,omitempty"`
}

// CodeGenerationRequest describes an AI-assisted code generation request.
type CodeGenerationRequest struct {
	Description string   `json:"description"`
	Language    string   `json:"language,omitempty"`
	Context     string   `json:"context,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
}

// WebhookRegistration describes a webhook subscription to create.
type WebhookRegistration struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
}

// Webhook represents a registered webhook as observed from the server.
type Webhook struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// PluginInfo represents an installed or installable plugin.
type PluginInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Status       string   `json:"status"`
	InstalledAt  string   `json:"installedAt,omitempty"`
}

// registerAgentRequest is the JSON request body for registering an agent.
type registerAgentRequest struct {
	Name         string   `json:"name"`
	Capabilities []string `json:"capabilities"`
}

// installPluginRequest is the JSON request body for installing a plugin.
type installPluginRequest struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config,omitempty"`
}

// registerWebhookResponse is the JSON payload returned when a webhook is
// created. Some deployments return the id under "webhookId", others under
// "id"; both are accepted.
type registerWebhookResponse struct {
	WebhookID string `json:"webhookId"`
	ID        string `json:"id"`
}
