/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/sameteraslan/minibit/pkg/api"
	"github.com/sameteraslan/minibit/pkg/capture"
	"github.com/sameteraslan/minibit/pkg/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the codec REST API server",
	Long: `Start the MiniBit REST API server. Frames can be encoded,
decoded, inspected and captured over HTTP; Prometheus metrics are
exposed at /metrics.

Examples:
  minibit serve --api-key=mysecretkey --port=8080
  minibit serve --config=~/.config/minibit/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		configPath, _ := cmd.Flags().GetString("config")

		captureConfig := capture.SessionConfig{
			DataDir:       dataDir,
			FsyncInterval: time.Second,
			BufferSize:    64 * 1024,
		}

		// Flags win over the config file; the file fills the gaps.
		if configPath != "" && config.ConfigExists(configPath) {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if apiKey == "" {
				apiKey = cfg.Security.ClientAPIKey
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}
			if !cmd.Flags().Changed("data-dir") {
				captureConfig.DataDir = cfg.DataDir
			}
			captureConfig.FsyncInterval = time.Duration(cfg.Capture.FsyncIntervalMs) * time.Millisecond
			captureConfig.BufferSize = cfg.Capture.BufferSize
		}

		if apiKey == "" {
			cmd.Println("Error: --api-key is required (or run 'minibit init' and pass --config)")
			return nil
		}

		session, err := capture.NewSession(captureConfig)
		if err != nil {
			return err
		}
		defer session.Close()

		cmd.Printf("Capture session: %s\n", session.ID())
		return api.StartServer(session, api.ServerConfig{
			Port:    port,
			APIKey:  apiKey,
			DataDir: captureConfig.DataDir,
		})
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "Client API key for authentication")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}
