// Package main provides the entry point for the Resume Evaluator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_evaluator",
	Short: "Resume Evaluator HTTP API Server",
	Long:  "Resume Evaluator scores resumes against job descriptions and reports skill gaps via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
