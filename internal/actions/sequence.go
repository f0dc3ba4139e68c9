package actions

import (
	"squill.dev/squill/internal/runtime"
)

// SequenceOptions contains options for the sequence command
type SequenceOptions struct {
	Base   string // First revision (defaults to the root)
	Target string // Last revision (defaults to the unique head)
}

// SequenceAction prints the revisions from base to target in deploy order
func SequenceAction(ctx *runtime.Context, opts SequenceOptions) error {
	seq, err := ctx.Engine.Sequence(opts.Base, opts.Target)
	if err != nil {
		return err
	}

	for _, key := range seq {
		ctx.Splog.Page(key + "\n")
	}
	return nil
}
