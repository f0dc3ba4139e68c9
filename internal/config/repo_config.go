package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"squill.dev/squill/internal/tui"
)

const (
	// ConfigFilename is the name of the project configuration file
	ConfigFilename = ".squill.yaml"
	// DefaultRepository is the revision repository path used when none is configured
	DefaultRepository = "revisions"
)

// RepoConfig represents the project configuration
type RepoConfig struct {
	Repository string    `yaml:"repository,omitempty"`
	Log        LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures the optional rotating log file
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	MaxSize    int    `yaml:"maxSize,omitempty"`
	MaxBackups int    `yaml:"maxBackups,omitempty"`
	MaxAge     int    `yaml:"maxAge,omitempty"`
}

// GetRepoConfig reads the project configuration
func GetRepoConfig(projectRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(projectRoot, ConfigFilename)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var config RepoConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse project config %s: %w", configPath, err)
	}

	return &config, nil
}

// SaveRepoConfig writes the project configuration
func SaveRepoConfig(projectRoot string, config *RepoConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(projectRoot, ConfigFilename), data, 0644)
}

// IsInitialized checks if the project has a configuration file
func IsInitialized(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, ConfigFilename))
	return err == nil
}

// RepositoryPath returns the revision repository directory.
// SQUILL_REPOSITORY overrides the configured path; relative paths are
// resolved against the project root.
func (c *RepoConfig) RepositoryPath(projectRoot string) string {
	repository := c.Repository
	if env := os.Getenv("SQUILL_REPOSITORY"); env != "" {
		repository = env
	}
	if repository == "" {
		repository = DefaultRepository
	}

	if filepath.IsAbs(repository) {
		return repository
	}
	return filepath.Join(projectRoot, repository)
}

// LogFileOptions returns the log file settings with environment overrides
// applied. A relative log file is resolved against the project root.
func (c *RepoConfig) LogFileOptions(projectRoot string) tui.LogFileOptions {
	opts := tui.LogFileOptions{
		Path:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	}

	if path := os.Getenv("SQUILL_LOG_FILE"); path != "" {
		opts.Path = path
	}
	if maxSize, ok := envInt("SQUILL_LOG_MAX_SIZE"); ok && maxSize > 0 {
		opts.MaxSize = maxSize
	}
	if maxBackups, ok := envInt("SQUILL_LOG_MAX_BACKUPS"); ok && maxBackups >= 0 {
		opts.MaxBackups = maxBackups
	}
	if maxAge, ok := envInt("SQUILL_LOG_MAX_AGE"); ok && maxAge > 0 {
		opts.MaxAge = maxAge
	}
	opts.Path = tui.ResolveLogFilePath(opts.Path, projectRoot)

	return opts
}

func envInt(name string) (int, bool) {
	value := os.Getenv(name)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
