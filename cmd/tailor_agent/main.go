// Package main provides the command line entry point for the resume tailor agent.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "Job-posting-aware resume tailoring agent",
	Long: `tailor_agent extracts a job posting from literal text, a PDF, or a URL,
analyzes it against your master profile, and renders a tailored resume PDF.
LinkedIn postings are captured through a logged-in browser session that is
reused for the rest of the day.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if debugLogging {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

var debugLogging bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
