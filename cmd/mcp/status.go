package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Long:  `Display server status, version, uptime and queue depth.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		status, err := c.GetStatus(context.Background())
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, status)
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Status:\t%s\n", status.Status)
		fmt.Fprintf(tw, "Version:\t%s\n", status.Version)
		fmt.Fprintf(tw, "Uptime:\t%.0fs\n", status.Uptime)
		fmt.Fprintf(tw, "Active Tasks:\t%d\n", status.ActiveTasks)
		fmt.Fprintf(tw, "Agents:\t%d\n", status.Agents)
		tw.Flush()
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Long:  `Run the server's health checks and print the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		health, err := c.GetHealth(context.Background())
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, health)
			return
		}
		fmt.Printf("Health: %v\n", health["status"])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(healthCmd)
}
