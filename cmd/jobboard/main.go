// Package main provides the entry point for the job board gateway and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/jobboard/internal/client"
	"github.com/jonathan/jobboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	gatewayURL string
)

var rootCmd = &cobra.Command{
	Use:           "jobboard",
	Short:         "Job board AI gateway and CLI",
	Long:          "jobboard serves the job catalog and the Gemini-backed AI gateway, and talks to a running gateway from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "Gateway base URL (overrides JOBBOARD_GATEWAY_URL)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGatewayClient builds a client for the configured gateway.
func newGatewayClient() (*client.Client, error) {
	url := gatewayURL
	if url == "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		url = cfg.GatewayURL
	}
	return client.New(url, nil), nil
}

func readFile(path, what string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--%s is required", what)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", what, err)
	}
	return string(data), nil
}
