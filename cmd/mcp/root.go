package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/toolforge/mcp-go/internal/config"
	"github.com/toolforge/mcp-go/internal/logging"
	"github.com/toolforge/mcp-go/pkg/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP orchestration client",
	Long:  `Command-line client for an MCP task orchestration server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Output: os.Stderr,
			Pretty: true,
		})
	},
}

// Global flags
var (
	serverURL  string
	jsonOutput bool
	timeout    time.Duration
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-call timeout (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// getClient builds a client from the config file and global flags.
// Flags win over the config file.
func getClient() (*mcp.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	url := cfg.ServerURL
	if serverURL != "" {
		url = serverURL
	}

	var opts []mcp.ClientOption
	if timeout > 0 {
		opts = append(opts, mcp.WithTimeout(timeout))
	} else if cfg.Timeout > 0 {
		opts = append(opts, mcp.WithTimeout(cfg.Timeout))
	}
	if cfg.HasMaxRetries {
		opts = append(opts, mcp.WithMaxRetries(cfg.MaxRetries))
	}
	if cfg.RetryDelay > 0 {
		opts = append(opts, mcp.WithRetryDelay(cfg.RetryDelay))
	}
	opts = append(opts, mcp.WithLogger(logging.Logger))

	return mcp.NewClient(url, opts...)
}

// handleError prints the error and exits with the matching code.
func handleError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case mcp.IsConnectionError(err):
		os.Exit(ExitServerUnreachable)
	case mcp.IsMCPError(err):
		os.Exit(ExitAPIError)
	default:
		os.Exit(ExitGeneralError)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}
