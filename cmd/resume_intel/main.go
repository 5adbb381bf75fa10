// Package main provides the entry point for the resume-intel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_intel",
	Short: "Heuristic resume text intelligence extraction",
	Long:  "resume_intel extracts structured facts from plain-text resumes: contact channels, named sections, employment entries, and total experience computed by merging overlapping date ranges.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
