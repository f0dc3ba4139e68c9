package actions

import (
	"fmt"

	"squill.dev/squill/internal/runtime"
	"squill.dev/squill/internal/tui"
)

// RebaseOptions contains options for the rebase command
type RebaseOptions struct {
	Key  string // Revision to move
	Onto string // New parent, must be a head
}

// RebaseAction makes Onto the parent of Key
func RebaseAction(ctx *runtime.Context, opts RebaseOptions) error {
	if opts.Key == "" {
		return fmt.Errorf("revision to rebase must be specified")
	}
	if opts.Onto == "" {
		return fmt.Errorf("new parent must be specified with --onto")
	}

	if err := ctx.Engine.Rebase(opts.Key, opts.Onto); err != nil {
		return err
	}

	ctx.Splog.Info("Rebased %s onto %s.",
		tui.ColorRevisionKey(opts.Key, false),
		tui.ColorRevisionKey(opts.Onto, false))
	return nil
}
