package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ta",
	Short: "Task challenge CLI",
	Long: `A CLI for competition-style task challenges: fetch tasks, submit
answers, and track your attempts.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Global flags and state
var (
	jsonOutput  bool
	verbose     bool
	flagSecret  string
	flagBaseURL string
	flagRound   string
	flagChal    string

	logger zerolog.Logger
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagSecret, "secret", "", "Team secret (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Challenge site URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagRound, "round", "", "Round id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagChal, "challenge", "", "Challenge id for automatic round selection (overrides config)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
