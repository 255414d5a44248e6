package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names. Environment values take precedence over every
// config file so that secrets can stay out of files entirely.
const (
	EnvSecret      = "TASKARENA_SECRET"
	EnvBaseURL     = "TASKARENA_BASE_URL"
	EnvRoundID     = "TASKARENA_ROUND_ID"
	EnvChallengeID = "TASKARENA_CHALLENGE_ID"
	EnvHistoryPath = "TASKARENA_HISTORY"
)

// Resolved is the final merged configuration. Precedence order (highest to
// lowest):
//  1. Environment variables (TASKARENA_*), including values loaded from a
//     .env file in the working directory
//  2. Project config (taskarena.toml, discovered upward from the working
//     directory)
//  3. Global config (~/.taskarena/config.toml)
//  4. Built-in defaults (history path only)
type Resolved struct {
	Secret      string
	BaseURL     string
	RoundID     string
	ChallengeID string
	HistoryPath string
}

// Resolve merges configuration for the current working directory and home.
func Resolve() (*Resolved, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return ResolveFrom(workDir, homeDir)
}

// ResolveFrom merges configuration using explicit directories. Split out
// from Resolve for tests.
func ResolveFrom(workDir, homeDir string) (*Resolved, error) {
	// A missing .env is fine; a malformed one is not.
	envFile := filepath.Join(workDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	}

	globalCfg, err := LoadGlobal(homeDir)
	if err != nil {
		return nil, err
	}
	projectCfg, err := DiscoverProject(workDir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		HistoryPath: filepath.Join(homeDir, GlobalConfigDir, "history.db"),
	}
	for _, layer := range []*Config{globalCfg, projectCfg} {
		applyLayer(resolved, layer)
	}
	applyEnv(resolved)

	return resolved, nil
}

func applyLayer(resolved *Resolved, cfg *Config) {
	if cfg.Secret != "" {
		resolved.Secret = cfg.Secret
	}
	if cfg.BaseURL != "" {
		resolved.BaseURL = cfg.BaseURL
	}
	if cfg.RoundID != "" {
		resolved.RoundID = cfg.RoundID
	}
	if cfg.ChallengeID != "" {
		resolved.ChallengeID = cfg.ChallengeID
	}
	if cfg.HistoryPath != "" {
		resolved.HistoryPath = cfg.HistoryPath
	}
}

func applyEnv(resolved *Resolved) {
	if v := os.Getenv(EnvSecret); v != "" {
		resolved.Secret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		resolved.BaseURL = v
	}
	if v := os.Getenv(EnvRoundID); v != "" {
		resolved.RoundID = v
	}
	if v := os.Getenv(EnvChallengeID); v != "" {
		resolved.ChallengeID = v
	}
	if v := os.Getenv(EnvHistoryPath); v != "" {
		resolved.HistoryPath = v
	}
}
