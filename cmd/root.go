// Package cmd implements the CLI commands for reportpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reportpipe",
	Short: "reportpipe — turn a JSON API endpoint into a formatted report",
	Long: `reportpipe fetches JSON from an HTTP API, normalizes the response into a
flat record list, and renders it as a DOCX, PDF, Markdown, or JSON report.

Usage:
  reportpipe generate <url> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
