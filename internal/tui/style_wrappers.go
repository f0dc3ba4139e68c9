package tui

import (
	"squill.dev/squill/internal/tui/style"
)

// Forward style functions for convenience

// ColorRevisionKey colors a revision key, highlighting heads
func ColorRevisionKey(key string, isHead bool) string { return style.ColorRevisionKey(key, isHead) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return style.ColorDim(text) }
