package actions

import (
	"errors"
	"fmt"
	"path/filepath"

	"squill.dev/squill/internal/engine"
	squillerrors "squill.dev/squill/internal/errors"
	"squill.dev/squill/internal/runtime"
)

// AddOptions contains options for the add command
type AddOptions struct {
	Key    string // Generated when empty
	Parent string // Defaults to the unique head
	Root   bool   // Add a revision without parent
}

// AddAction adds a revision and prints its key
func AddAction(ctx *runtime.Context, opts AddOptions) error {
	eng := ctx.Engine
	splog := ctx.Splog

	if opts.Root && opts.Parent != "" {
		return fmt.Errorf("cannot use --root together with --parent")
	}

	parent := opts.Parent
	if parent == "" && !opts.Root {
		head, err := eng.Head()
		if err != nil {
			if errors.Is(err, squillerrors.ErrMultipleHeads) {
				splog.Tip("Pass --parent to choose a head, or rebase one head onto another.")
			}
			return err
		}
		parent = head
	}

	key, err := eng.Add(opts.Key, parent)
	if err != nil {
		return err
	}

	if parent == "" {
		splog.Debug("Added root revision %s", key)
	} else {
		splog.Debug("Added revision %s on top of %s", key, parent)
	}
	splog.Debug("Scripts: %s, %s",
		filepath.Join(eng.Root(), key, engine.DeployScriptFilename),
		filepath.Join(eng.Root(), key, engine.RevertScriptFilename))

	splog.Page(key + "\n")
	return nil
}
