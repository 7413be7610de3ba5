// Package config provides repository configuration management,
// including reading and writing dugite configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const repoConfigFileName = ".dugite_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultRemote *string `json:"defaultRemote,omitempty"`
	Progress      *bool   `json:"progress,omitempty"`
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", repoConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SetRepoConfig writes the repository configuration
func SetRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", repoConfigFileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize repo config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}

	return nil
}

// GetDefaultRemote returns the configured remote name, or "origin" as default
func GetDefaultRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.DefaultRemote != nil && *config.DefaultRemote != "" {
		return *config.DefaultRemote, nil
	}

	return "origin", nil
}

// IsProgressEnabled returns whether progress reporting is enabled for the
// repository. Progress is on unless explicitly disabled.
func IsProgressEnabled(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.Progress != nil {
		return *config.Progress, nil
	}

	return true, nil
}
