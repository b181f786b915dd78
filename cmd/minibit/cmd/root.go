/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minibit",
	Short: "MiniBit - zero-copy binary frame codec",
	Long: `MiniBit is a compact binary wire format for low-latency messaging:
fixed little-endian headers, CRC32C trailers, presence bitmaps for
optional fields, and an append-only capture log for recorded frames.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global data directory flag
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for capture sessions")
}
