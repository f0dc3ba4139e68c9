package actions

import (
	"squill.dev/squill/internal/runtime"
)

// HeadsAction prints every head revision, one per line
func HeadsAction(ctx *runtime.Context) error {
	for _, head := range ctx.Engine.Heads() {
		ctx.Splog.Page(head + "\n")
	}
	return nil
}

// HeadAction prints the unique head revision.
// Nothing is printed for an empty repository.
func HeadAction(ctx *runtime.Context) error {
	head, err := ctx.Engine.Head()
	if err != nil {
		return err
	}
	if head != "" {
		ctx.Splog.Page(head + "\n")
	}
	return nil
}
