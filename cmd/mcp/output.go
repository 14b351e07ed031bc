package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/toolforge/mcp-go/pkg/mcp"
)

// printJSON prints any value as indented JSON.
func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// printTask prints a single task to the writer
func printTask(w io.Writer, task *mcp.TaskInfo, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, task)
		return
	}

	// Table format
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", task.Type)
	fmt.Fprintf(tw, "Status:\t%s\n", task.Status)
	if task.Target != "" {
		fmt.Fprintf(tw, "Target:\t%s\n", task.Target)
	}
	if task.Agent != "" {
		fmt.Fprintf(tw, "Agent:\t%s\n", task.Agent)
	}
	if task.CreatedAt != "" {
		fmt.Fprintf(tw, "Created:\t%s\n", task.CreatedAt)
	}
	tw.Flush()
}

// printTaskList prints a list of tasks
func printTaskList(w io.Writer, tasks []mcp.TaskInfo, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTYPE\tSTATUS\tAGENT\n")
	fmt.Fprintf(tw, "--\t----\t------\t-----\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID, truncate(task.Type, 30), task.Status, task.Agent)
	}
	tw.Flush()
}

// printAgentList prints agents in a table
func printAgentList(w io.Writer, agents []mcp.AgentStatus, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, agents)
		return
	}

	if len(agents) == 0 {
		fmt.Fprintln(w, "No agents registered")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tSTATUS\tHEALTH\tACTIVE\tCAPABILITIES\n")
	fmt.Fprintf(tw, "----\t------\t------\t------\t------------\n")
	for _, a := range agents {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%s\n",
			a.Name, a.Status, a.HealthScore, a.ActiveTasks, strings.Join(a.Capabilities, ","))
	}
	tw.Flush()
}

// printWebhookList prints webhooks in a table
func printWebhookList(w io.Writer, hooks []mcp.Webhook, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, hooks)
		return
	}

	if len(hooks) == 0 {
		fmt.Fprintln(w, "No webhooks registered")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tURL\tEVENTS\n")
	fmt.Fprintf(tw, "--\t---\t------\n")
	for _, h := range hooks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", h.ID, truncate(h.URL, 50), strings.Join(h.Events, ","))
	}
	tw.Flush()
}

// printPluginList prints plugins in a table
func printPluginList(w io.Writer, plugins []mcp.PluginInfo, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, plugins)
		return
	}

	if len(plugins) == 0 {
		fmt.Fprintln(w, "No plugins installed")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tVERSION\tSTATUS\n")
	fmt.Fprintf(tw, "----\t-------\t------\n")
	for _, p := range plugins {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Version, p.Status)
	}
	tw.Flush()
}

// truncate shortens a string to max characters with an ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
