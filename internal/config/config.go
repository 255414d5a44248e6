// Package config loads and merges taskarena configuration from TOML files
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home.
	GlobalConfigDir = ".taskarena"

	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.toml"

	// ProjectConfigFileName is the name of the per-project config file,
	// discovered by walking up from the working directory.
	ProjectConfigFileName = "taskarena.toml"
)

// Config holds the settings a single config file can provide. Empty fields
// mean "not set here" and defer to the next layer during resolution.
type Config struct {
	Secret      string
	BaseURL     string
	RoundID     string
	ChallengeID string
	HistoryPath string
}

// configFile is the raw TOML structure shared by global and project files.
type configFile struct {
	Challenge challengeSection `toml:"challenge"`
	History   historySection   `toml:"history"`
}

type challengeSection struct {
	Secret      string `toml:"secret"`
	BaseURL     string `toml:"base_url"`
	RoundID     string `toml:"round_id"`
	ChallengeID string `toml:"challenge_id"`
}

type historySection struct {
	Path string `toml:"path"`
}

// LoadFile loads a single TOML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw configFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML %s: %w", path, err)
	}

	return &Config{
		Secret:      raw.Challenge.Secret,
		BaseURL:     raw.Challenge.BaseURL,
		RoundID:     raw.Challenge.RoundID,
		ChallengeID: raw.Challenge.ChallengeID,
		HistoryPath: raw.History.Path,
	}, nil
}

// LoadGlobal loads the global configuration from ~/.taskarena/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobal(homeDir string) (*Config, error) {
	path := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// DiscoverProject walks up from workDir looking for a taskarena.toml.
// Returns an empty config (not an error) if no file is found.
func DiscoverProject(workDir string) (*Config, error) {
	dir := workDir
	for {
		path := filepath.Join(dir, ProjectConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return &Config{}, nil
		}
		dir = parent
	}
}
