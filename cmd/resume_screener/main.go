// Package main provides the entry point for the Resume Screener CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume Screener HTTP API Server",
	Long:  "Resume Screener extracts skills from PDF resumes, scores candidates against a hiring domain, and ranks them into a leaderboard with AI-generated recruiter notes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
