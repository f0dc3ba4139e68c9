// Package tui provides terminal output for squill.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Revision tree rendering
package tui
