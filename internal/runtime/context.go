// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"io"
	"os"

	"squill.dev/squill/internal/config"
	"squill.dev/squill/internal/engine"
	"squill.dev/squill/internal/tui"
)

// Context provides access to engine and output for commands
type Context struct {
	Engine      engine.Engine
	Splog       *tui.Splog
	Config      *config.RepoConfig
	ProjectRoot string
}

// NewContext creates a new context with the given engine
func NewContext(eng engine.Engine) *Context {
	return &Context{
		Engine: eng,
		Splog:  tui.NewSplog(),
		Config: &config.RepoConfig{},
	}
}

// Options controls how GetContext resolves the repository
type Options struct {
	// Repository overrides the configured repository directory
	Repository string
	// Out receives console output
	Out io.Writer
	// Engine options, mainly for tests
	EngineOptions []engine.Option
}

// GetContext locates the project, reads its configuration and opens the
// revision repository.
func GetContext(opts Options) (*Context, error) {
	projectRoot, err := config.FindProjectRootFromWorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.GetRepoConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	repository := cfg.RepositoryPath(projectRoot)
	if opts.Repository != "" {
		repository = opts.Repository
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	splog, err := tui.NewSplogWithConfig(out, cfg.LogFileOptions(projectRoot))
	if err != nil {
		return nil, err
	}

	eng, err := engine.Open(repository, opts.EngineOptions...)
	if err != nil {
		_ = splog.Close()
		return nil, err
	}
	splog.Debug("Opened repository %s (%d revisions)", repository, len(eng.AllRevisions()))

	return &Context{
		Engine:      eng,
		Splog:       splog,
		Config:      cfg,
		ProjectRoot: projectRoot,
	}, nil
}
