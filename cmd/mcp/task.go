package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/toolforge/mcp-go/pkg/mcp"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskSubmitCmd = &cobra.Command{
	Use:   "submit <type>",
	Short: "Submit a new task",
	Long: `Submit a task of the given type for processing.

Priority can be one of: low, normal, high, critical.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, _ := cmd.Flags().GetString("target")
		priority, _ := cmd.Flags().GetString("priority")
		agent, _ := cmd.Flags().GetString("agent")
		watch, _ := cmd.Flags().GetBool("watch")

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		info, err := c.SubmitTask(context.Background(), mcp.TaskSubmission{
			Type:     args[0],
			Target:   target,
			Priority: mcp.TaskPriority(priority),
			Agent:    agent,
		})
		if err != nil {
			handleError(err)
		}

		if !watch {
			printTask(os.Stdout, info, jsonOutput)
			return
		}

		info, err = watchTask(c, info.ID)
		if err != nil {
			handleError(err)
		}
		printTask(os.Stdout, info, jsonOutput)
	},
}

// watchTask polls until the task reaches a terminal status.
func watchTask(c *mcp.Client, id string) (*mcp.TaskInfo, error) {
	tracker := c.TrackTask(id)
	for {
		info, err := tracker.Refresh(context.Background())
		if err != nil {
			return nil, err
		}
		if tracker.Done() {
			return info, nil
		}
		if !jsonOutput {
			fmt.Fprintf(os.Stderr, "%s: %s\n", id, info.Status)
		}
		time.Sleep(time.Second)
	}
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		info, err := c.GetTask(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, info, jsonOutput)
	},
}

var taskCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a task",
	Long:  `Request cancellation of a queued or running task. Finished tasks cannot be cancelled.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		ack, err := c.CancelTask(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, ack)
			return
		}
		fmt.Printf("Task %s: %s\n", args[0], ack["result"])
	},
}

var taskAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show task analytics",
	Long:  `Fetch task analytics. Depending on the server this is either a task list or aggregate counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		agent, _ := cmd.Flags().GetString("agent")

		var opts []mcp.ListTasksOption
		if status != "" {
			opts = append(opts, mcp.WithStatusFilter(mcp.TaskStatus(status)))
		}
		if agent != "" {
			opts = append(opts, mcp.WithAgentFilter(agent))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		listing, err := c.ListTasks(context.Background(), opts...)
		if err != nil {
			handleError(err)
		}

		if tasks, ok := listing.Tasks(); ok {
			printTaskList(os.Stdout, tasks, jsonOutput)
			return
		}
		if analytics, ok := listing.Analytics(); ok {
			printJSON(os.Stdout, analytics)
			return
		}
		os.Stdout.Write(listing.Raw())
		fmt.Println()
	},
}

func init() {
	taskSubmitCmd.Flags().String("target", "", "Task target (file, directory, URL)")
	taskSubmitCmd.Flags().String("priority", "", "Task priority (low, normal, high, critical)")
	taskSubmitCmd.Flags().String("agent", "", "Preferred agent")
	taskSubmitCmd.Flags().Bool("watch", false, "Poll until the task finishes")

	taskAnalyticsCmd.Flags().String("status", "", "Filter by status")
	taskAnalyticsCmd.Flags().String("agent", "", "Filter by agent")

	taskCmd.AddCommand(taskSubmitCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskCancelCmd)
	taskCmd.AddCommand(taskAnalyticsCmd)
	rootCmd.AddCommand(taskCmd)
}
