package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage worker agents",
}

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents and their health",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		agents, err := c.ListAgents(context.Background())
		if err != nil {
			handleError(err)
		}

		printAgentList(os.Stdout, agents, jsonOutput)
	},
}

var agentShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show agent details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		agent, err := c.GetAgent(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printJSON(os.Stdout, agent)
	},
}

var agentRegisterCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a new agent",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		caps, _ := cmd.Flags().GetString("capabilities")

		var capabilities []string
		if caps != "" {
			capabilities = strings.Split(caps, ",")
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		agent, err := c.RegisterAgent(context.Background(), args[0], capabilities)
		if err != nil {
			handleError(err)
		}

		printJSON(os.Stdout, agent)
	},
}

func init() {
	agentRegisterCmd.Flags().String("capabilities", "", "Comma-separated capability list")

	agentCmd.AddCommand(agentListCmd)
	agentCmd.AddCommand(agentShowCmd)
	agentCmd.AddCommand(agentRegisterCmd)
	rootCmd.AddCommand(agentCmd)
}
