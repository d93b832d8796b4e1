// Package main provides the entry point for the cover letter agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "coverletter_agent",
	Short: "Cover letter generator",
	Long:  "Cover letter agent generates a tailored cover letter from your resume, a reference cover letter, and a job description, remembering your inputs between runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()
	logging.Init()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
