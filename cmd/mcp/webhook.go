package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolforge/mcp-go/pkg/mcp"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage webhooks",
}

var webhookRegisterCmd = &cobra.Command{
	Use:   "register <url>",
	Short: "Register a webhook",
	Long:  `Register a webhook for task events such as task.completed or task.failed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		events, _ := cmd.Flags().GetString("events")
		secret, _ := cmd.Flags().GetString("secret")

		if events == "" {
			fmt.Fprintln(os.Stderr, "Error: --events is required")
			os.Exit(ExitUsageError)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		id, err := c.RegisterWebhook(context.Background(), mcp.WebhookRegistration{
			URL:    args[0],
			Events: strings.Split(events, ","),
			Secret: secret,
		})
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, map[string]string{"webhookId": id})
			return
		}
		fmt.Printf("Registered webhook %s\n", id)
	},
}

var webhookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered webhooks",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		hooks, err := c.ListWebhooks(context.Background())
		if err != nil {
			handleError(err)
		}

		printWebhookList(os.Stdout, hooks, jsonOutput)
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a webhook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		ack, err := c.DeleteWebhook(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, ack)
			return
		}
		fmt.Printf("Webhook %s: %s\n", args[0], ack["result"])
	},
}

func init() {
	webhookRegisterCmd.Flags().String("events", "", "Comma-separated event list (required)")
	webhookRegisterCmd.Flags().String("secret", "", "Shared secret for payload signing")

	webhookCmd.AddCommand(webhookRegisterCmd)
	webhookCmd.AddCommand(webhookListCmd)
	webhookCmd.AddCommand(webhookDeleteCmd)
	rootCmd.AddCommand(webhookCmd)
}
