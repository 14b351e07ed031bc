package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Manage server plugins",
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed plugins",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		plugins, err := c.ListPlugins(context.Background())
		if err != nil {
			handleError(err)
		}

		printPluginList(os.Stdout, plugins, jsonOutput)
	},
}

var pluginShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show plugin details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		plugin, err := c.GetPlugin(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		printJSON(os.Stdout, plugin)
	},
}

var pluginInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a plugin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configJSON, _ := cmd.Flags().GetString("config")

		var pluginConfig map[string]any
		if configJSON != "" {
			if err := json.Unmarshal([]byte(configJSON), &pluginConfig); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid --config JSON: %v\n", err)
				os.Exit(ExitUsageError)
			}
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		plugin, err := c.InstallPlugin(context.Background(), args[0], pluginConfig)
		if err != nil {
			handleError(err)
		}

		printJSON(os.Stdout, plugin)
	},
}

var pluginUninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Uninstall a plugin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		ack, err := c.UninstallPlugin(context.Background(), args[0])
		if err != nil {
			handleError(err)
		}

		if jsonOutput {
			printJSON(os.Stdout, ack)
			return
		}
		fmt.Printf("Plugin %s: %s\n", args[0], ack["result"])
	},
}

func init() {
	pluginInstallCmd.Flags().String("config", "", "Plugin configuration as a JSON object")

	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginShowCmd)
	pluginCmd.AddCommand(pluginInstallCmd)
	pluginCmd.AddCommand(pluginUninstallCmd)
	rootCmd.AddCommand(pluginCmd)
}
