package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/taskarena/taskarena/internal/config"
	"github.com/taskarena/taskarena/internal/history"
	"github.com/taskarena/taskarena/pkg/arena"
)

// resolveSettings merges config files, environment, and command-line flags.
// Flags win over everything.
func resolveSettings() (*config.Resolved, error) {
	resolved, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	if flagSecret != "" {
		resolved.Secret = flagSecret
	}
	if flagBaseURL != "" {
		resolved.BaseURL = flagBaseURL
	}
	if flagRound != "" {
		resolved.RoundID = flagRound
		// An explicit round flag replaces any configured challenge.
		resolved.ChallengeID = ""
	}
	if flagChal != "" {
		resolved.ChallengeID = flagChal
		resolved.RoundID = ""
	}

	return resolved, nil
}

// getClient builds an API client from the resolved settings.
func getClient(ctx context.Context) (*arena.Client, error) {
	cfg, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: no team secret configured (set %s or the --secret flag)",
			arena.ErrInvalidArgument, config.EnvSecret)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: no challenge site configured (set %s or the --base-url flag)",
			arena.ErrInvalidArgument, config.EnvBaseURL)
	}

	var opts []arena.Option
	switch {
	case cfg.RoundID != "":
		opts = append(opts, arena.WithRoundID(cfg.RoundID))
	case cfg.ChallengeID != "":
		opts = append(opts, arena.WithChallengeID(cfg.ChallengeID))
	}

	return arena.New(ctx, cfg.Secret, cfg.BaseURL, opts...)
}

// openHistory opens the attempt history store from the resolved settings.
func openHistory() (*history.Store, error) {
	cfg, err := resolveSettings()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.HistoryPath)
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, arena.ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, arena.ErrNoRoundCurrentlyRunning):
		return ExitNoRound
	}

	var over *arena.TasksOverError
	if errors.As(err, &over) {
		return ExitTasksOver
	}
	var httpErr *arena.HTTPError
	if errors.As(err, &httpErr) {
		return ExitServerError
	}
	var desErr *arena.DeserializationError
	if errors.As(err, &desErr) {
		return ExitBadPayload
	}

	return ExitGeneralError
}

// handleError prints the error and exits with the mapped code.
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
