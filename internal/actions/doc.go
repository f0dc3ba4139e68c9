// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a squill command (add, rebase, sequence, etc.)
// and orchestrates operations on the revision engine.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog, and configuration
//   - Actions are stateless - all state is managed through the Engine interface
//   - Data (revision keys) is written with Splog.Page so it can be piped
//
// Dependencies:
//   - engine: Revision graph
//   - config: Project configuration
//   - tui: Output and tree rendering
package actions
