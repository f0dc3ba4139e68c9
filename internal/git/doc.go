// Package git locates the git worktree that encloses a squill project.
//
// Revision files are meant to be tracked in version control, so the
// worktree root is a natural anchor for relative repository paths when no
// project configuration file exists.
package git
