// Package main provides the entry point for the doccheck CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doccheck",
	Short: "Ontario estate document compliance checker",
	Long:  "doccheck analyzes wills and powers of attorney against Ontario statutory requirements, scores compliance and risk, and suggests remediation steps backed by case law.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
