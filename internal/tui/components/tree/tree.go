// Package tree provides a renderer for revision tree visualizations.
package tree

import (
	"slices"
	"strings"

	"squill.dev/squill/internal/tui/style"
)

const (
	// HeadSymbol is the symbol used for head revisions in tree views
	HeadSymbol = "◉"
	// RevisionSymbol is the symbol used for other revisions in tree views
	RevisionSymbol = "◯"
)

// RevisionAnnotation holds per-revision display metadata
type RevisionAnnotation struct {
	CustomLabel string // Additional text to display after the key
}

// RenderOptions configures rendering behavior
type RenderOptions struct {
	Reverse bool // Roots first instead of heads first
	NoStyle bool
}

// RevisionTreeRenderer renders revision trees, children above their parents
type RevisionTreeRenderer struct {
	getChildren func(key string) []string
	isHead      func(key string) bool
	Annotations map[string]RevisionAnnotation
}

// NewRevisionTreeRenderer creates a new renderer
func NewRevisionTreeRenderer(getChildren func(key string) []string, isHead func(key string) bool) *RevisionTreeRenderer {
	return &RevisionTreeRenderer{
		getChildren: getChildren,
		isHead:      isHead,
		Annotations: make(map[string]RevisionAnnotation),
	}
}

// SetAnnotation sets the annotation for a single revision
func (r *RevisionTreeRenderer) SetAnnotation(key string, annotation RevisionAnnotation) {
	r.Annotations[key] = annotation
}

type renderState struct {
	opts   RenderOptions
	widths map[string]int
}

// RenderTree renders every revision reachable from the given roots.
// Each root's tree is rendered in turn, heads first unless opts.Reverse is set.
func (r *RevisionTreeRenderer) RenderTree(roots []string, opts RenderOptions) []string {
	state := &renderState{opts: opts, widths: make(map[string]int)}

	var lines []string
	for _, root := range roots {
		lines = append(lines, r.upstackInclusiveLines(state, root, 0)...)
	}

	if opts.Reverse {
		slices.Reverse(lines)
	}
	return lines
}

// width returns the number of columns the subtree of key occupies
func (r *RevisionTreeRenderer) width(state *renderState, key string) int {
	if w, ok := state.widths[key]; ok {
		return w
	}
	w := 0
	for _, child := range r.getChildren(key) {
		w += r.width(state, child)
	}
	w = max(w, 1)
	state.widths[key] = w
	return w
}

func (r *RevisionTreeRenderer) upstackInclusiveLines(state *renderState, key string, indent int) []string {
	var lines []string
	var childColumns []int

	column := indent
	for _, child := range r.getChildren(key) {
		childColumns = append(childColumns, column)
		lines = append(lines, r.upstackInclusiveLines(state, child, column)...)
		column += r.width(state, child)
	}

	return append(lines, r.revisionLine(state, key, indent, childColumns))
}

func (r *RevisionTreeRenderer) revisionLine(state *renderState, key string, indent int, childColumns []int) string {
	var tree strings.Builder
	tree.WriteString(strings.Repeat("│ ", indent))

	isHead := r.isHead(key)
	if isHead {
		tree.WriteString(HeadSymbol)
	} else {
		tree.WriteString(RevisionSymbol)
	}
	tree.WriteString(branchingLine(indent, childColumns))

	var label string
	if annotation, ok := r.Annotations[key]; ok && annotation.CustomLabel != "" {
		label = " " + annotation.CustomLabel
	}

	if state.opts.NoStyle {
		return tree.String() + " " + key + label
	}

	var colored strings.Builder
	for i, char := range []rune(tree.String()) {
		colored.WriteString(style.ColorForIndex(string(char), i))
	}
	colored.WriteString(" ")
	colored.WriteString(style.ColorRevisionKey(key, isHead))
	if label != "" {
		colored.WriteString(style.ColorDim(label))
	}
	return colored.String()
}

// branchingLine joins the columns of the second and later children to the
// parent's column
func branchingLine(indent int, childColumns []int) string {
	if len(childColumns) < 2 {
		return ""
	}

	last := childColumns[len(childColumns)-1]
	var b strings.Builder
	for col := indent + 1; col <= last; col++ {
		switch {
		case col == last:
			b.WriteString("─┘")
		case slices.Contains(childColumns, col):
			b.WriteString("─┴")
		default:
			b.WriteString("──")
		}
	}
	return b.String()
}
