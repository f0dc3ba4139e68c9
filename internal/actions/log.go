package actions

import (
	"fmt"
	"strings"

	"squill.dev/squill/internal/engine"
	"squill.dev/squill/internal/runtime"
	"squill.dev/squill/internal/tui"
	"squill.dev/squill/internal/tui/components/tree"
)

// LogOptions contains options for the log command
type LogOptions struct {
	Reverse bool // Print roots first
	NoStyle bool
}

// LogAction displays the revision tree.
// Revisions whose parent is missing are shown as separate trees. Revisions
// on or above a cycle cannot be placed in a tree and are only counted.
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	eng := ctx.Engine
	renderer := tui.NewRevisionTreeRenderer(eng)

	var roots []string
	for _, rev := range eng.AllRevisions() {
		if rev.IsRoot() {
			roots = append(roots, rev.Key)
			continue
		}
		if _, ok := eng.GetRevision(rev.Parent); !ok {
			roots = append(roots, rev.Key)
			renderer.SetAnnotation(rev.Key, tree.RevisionAnnotation{
				CustomLabel: fmt.Sprintf("(missing parent %s)", rev.Parent),
			})
		}
	}

	lines := renderer.RenderTree(roots, tree.RenderOptions{
		Reverse: opts.Reverse,
		NoStyle: opts.NoStyle,
	})
	if len(lines) > 0 {
		ctx.Splog.Page(strings.Join(lines, "\n"))
		ctx.Splog.Newline()
	}

	if hidden := len(eng.AllRevisions()) - countRendered(eng, roots); hidden > 0 {
		ctx.Splog.Warn("%d revision(s) not shown because their parents form a cycle.", hidden)
		ctx.Splog.Tip("Run 'squill doctor' for details.")
	}

	return nil
}

// countRendered counts the revisions reachable from roots through children
func countRendered(eng engine.RevisionReader, roots []string) int {
	count := 0
	queue := append([]string(nil), roots...)
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		count++
		queue = append(queue, eng.GetChildren(key)...)
	}
	return count
}
