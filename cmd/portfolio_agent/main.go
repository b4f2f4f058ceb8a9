// Package main provides the entry point for the Portfolio Studio AI service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "Portfolio Studio AI service",
	Long:  "Portfolio Studio analyzes, rewrites, and optimizes developer portfolios with AI assistance, served over a REST API or driven from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
