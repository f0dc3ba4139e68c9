package actions

import (
	"fmt"
	"os"

	"squill.dev/squill/internal/config"
	"squill.dev/squill/internal/runtime"
)

// InitOptions contains options for the init command
type InitOptions struct {
	Repository string // Repository directory to record, relative to the project root
}

// InitAction writes the project configuration and creates the repository directory
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	splog := ctx.Splog
	projectRoot := ctx.ProjectRoot

	cfg := ctx.Config
	if cfg == nil {
		cfg = &config.RepoConfig{}
	}

	if config.IsInitialized(projectRoot) && opts.Repository == "" {
		splog.Info("squill is already initialized in %s.", projectRoot)
	} else {
		if opts.Repository != "" {
			cfg.Repository = opts.Repository
		}
		if cfg.Repository == "" {
			cfg.Repository = config.DefaultRepository
		}
		if err := config.SaveRepoConfig(projectRoot, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		splog.Info("Wrote %s.", config.ConfigFilename)
	}

	repository := cfg.RepositoryPath(projectRoot)
	if err := os.MkdirAll(repository, 0755); err != nil {
		return fmt.Errorf("failed to create repository %s: %w", repository, err)
	}
	splog.Info("Revisions are stored in %s.", repository)

	return nil
}
