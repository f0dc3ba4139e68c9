package tui

import (
	"slices"

	"squill.dev/squill/internal/engine"
	"squill.dev/squill/internal/tui/components/tree"
)

// NewRevisionTreeRenderer creates a tree renderer configured for the current engine state
func NewRevisionTreeRenderer(eng engine.RevisionReader) *tree.RevisionTreeRenderer {
	heads := eng.Heads()
	return tree.NewRevisionTreeRenderer(
		eng.GetChildren,
		func(key string) bool { return slices.Contains(heads, key) },
	)
}
