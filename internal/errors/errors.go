// Package errors provides sentinel errors and custom error types for the squill application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCycle indicates that following parent links revisited a revision
	ErrCycle = errors.New("revisions form a cycle")

	// ErrMultipleHeads indicates that a target could not be chosen because
	// the repository has more than one head
	ErrMultipleHeads = errors.New("multiple head revisions")

	// ErrNoSequence indicates that a base revision is not an ancestor of a target
	ErrNoSequence = errors.New("no sequence of revisions")

	// ErrRead indicates that reading revision metadata failed
	ErrRead = errors.New("read error")

	// ErrMalformedLine indicates a metadata line that does not parse
	ErrMalformedLine = errors.New("malformed line")

	// ErrDuplicateProperty indicates a property declared twice in one metadata file
	ErrDuplicateProperty = errors.New("duplicate property")

	// ErrDuplicateRevision indicates that a revision key is already taken
	ErrDuplicateRevision = errors.New("duplicate revision")

	// ErrUnknownParent indicates that a parent revision does not exist
	ErrUnknownParent = errors.New("unknown parent")

	// ErrInvalidParent indicates that a rebase target is not a current head
	ErrInvalidParent = errors.New("invalid parent")

	// ErrRevisionNotFound indicates that a revision does not exist
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrInvalidKey indicates a revision key that cannot be stored as a directory name
	ErrInvalidKey = errors.New("invalid revision key")
)

// CycleError represents a cycle in the revision graph.
// Revisions holds the keys forming the cycle, in root-to-target order.
type CycleError struct {
	Revisions []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("revisions form a cycle: %s", strings.Join(e.Revisions, " -> "))
}

// Is returns true if the target error is ErrCycle
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// NewCycleError creates a new CycleError
func NewCycleError(revisions []string) *CycleError {
	return &CycleError{Revisions: revisions}
}

// HeadError represents an operation that needs a unique head while several exist
type HeadError struct {
	Heads []string
}

func (e *HeadError) Error() string {
	return fmt.Sprintf("multiple heads: %s", strings.Join(e.Heads, ", "))
}

// Is returns true if the target error is ErrMultipleHeads
func (e *HeadError) Is(target error) bool {
	return target == ErrMultipleHeads
}

// NewHeadError creates a new HeadError
func NewHeadError(heads []string) *HeadError {
	return &HeadError{Heads: heads}
}

// SequenceError represents a missing sequence from base to target
type SequenceError struct {
	Base   string
	Target string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("no sequence from base %q to target %q", e.Base, e.Target)
}

// Is returns true if the target error is ErrNoSequence
func (e *SequenceError) Is(target error) bool {
	return target == ErrNoSequence
}

// NewSequenceError creates a new SequenceError
func NewSequenceError(base, target string) *SequenceError {
	return &SequenceError{Base: base, Target: target}
}

// ReadError represents a failure to read a revision metadata file.
// Line is 1-based.
type ReadError struct {
	Msg  string
	Path string
	Line int
	kind error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s (%s:%d)", e.Msg, e.Path, e.Line)
}

// Is returns true if the target error is ErrRead or the specific read failure kind
func (e *ReadError) Is(target error) bool {
	return target == ErrRead || (e.kind != nil && target == e.kind)
}

// NewMalformedLineError creates a ReadError for a line that does not parse.
// The line is reported literally, including its trailing newline.
func NewMalformedLineError(line, path string, lineno int) *ReadError {
	return &ReadError{
		Msg:  fmt.Sprintf("malformed line: %q", line),
		Path: path,
		Line: lineno,
		kind: ErrMalformedLine,
	}
}

// NewDuplicatePropertyError creates a ReadError for a repeated property name
func NewDuplicatePropertyError(name, path string, lineno int) *ReadError {
	return &ReadError{
		Msg:  fmt.Sprintf("duplicate property: %q", name),
		Path: path,
		Line: lineno,
		kind: ErrDuplicateProperty,
	}
}

// DuplicateRevisionError represents an attempt to add a key that already exists
type DuplicateRevisionError struct {
	Key string
}

func (e *DuplicateRevisionError) Error() string {
	return fmt.Sprintf("duplicate revision %q", e.Key)
}

// Is returns true if the target error is ErrDuplicateRevision
func (e *DuplicateRevisionError) Is(target error) bool {
	return target == ErrDuplicateRevision
}

// NewDuplicateRevisionError creates a new DuplicateRevisionError
func NewDuplicateRevisionError(key string) *DuplicateRevisionError {
	return &DuplicateRevisionError{Key: key}
}

// UnknownParentError represents a parent key that is not in the graph
type UnknownParentError struct {
	Key string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("unknown parent %q", e.Key)
}

// Is returns true if the target error is ErrUnknownParent
func (e *UnknownParentError) Is(target error) bool {
	return target == ErrUnknownParent
}

// NewUnknownParentError creates a new UnknownParentError
func NewUnknownParentError(key string) *UnknownParentError {
	return &UnknownParentError{Key: key}
}

// InvalidParentError represents a rebase onto a revision that is not a head
type InvalidParentError struct {
	Key string
}

func (e *InvalidParentError) Error() string {
	return fmt.Sprintf("new parent %q must be a current head", e.Key)
}

// Is returns true if the target error is ErrInvalidParent
func (e *InvalidParentError) Is(target error) bool {
	return target == ErrInvalidParent
}

// NewInvalidParentError creates a new InvalidParentError
func NewInvalidParentError(key string) *InvalidParentError {
	return &InvalidParentError{Key: key}
}

// RevisionNotFoundError represents an error when a revision is not found
type RevisionNotFoundError struct {
	Key string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %q does not exist", e.Key)
}

// Is returns true if the target error is ErrRevisionNotFound
func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

// NewRevisionNotFoundError creates a new RevisionNotFoundError
func NewRevisionNotFoundError(key string) *RevisionNotFoundError {
	return &RevisionNotFoundError{Key: key}
}

// InvalidKeyError represents a revision key that is not a single path element
// or that would not survive a round trip through a metadata file
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid revision key %q", e.Key)
}

// Is returns true if the target error is ErrInvalidKey
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// NewInvalidKeyError creates a new InvalidKeyError
func NewInvalidKeyError(key string) *InvalidKeyError {
	return &InvalidKeyError{Key: key}
}
