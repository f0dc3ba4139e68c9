// Package engine manages the tree of database revisions.
//
// It is the core of squill, responsible for:
//   - Tracking parent relationships between revisions
//   - Reading and writing revision metadata on disk
//   - Deriving the ordered sequence of revisions between a base and a target
//   - Rebasing one branch of revisions onto the head of another
//
// Revisions live in a repository directory, one subdirectory per revision
// key holding a metadata file and a deploy and a revert script. The engine
// loads every revision when it is opened and writes through to disk only
// when a mutation has been fully validated.
package engine
