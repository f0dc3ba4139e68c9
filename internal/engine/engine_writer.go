package engine

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	squillerrors "squill.dev/squill/internal/errors"
)

// Add adds a new revision with an optional parent and returns its key.
// A key is generated if none is given.
func (g *Graph) Add(key, parent string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if key == "" {
		generated, err := g.keygen()
		if err != nil {
			return "", err
		}
		key = generated
	}

	rev := Revision{Key: key, Parent: parent}
	if err := g.validateAdd(rev); err != nil {
		return "", err
	}

	if err := g.store.create(rev); err != nil {
		return "", err
	}
	g.revisions[rev.Key] = rev

	return rev.Key, nil
}

// Rebase makes parent the new parent of the revision key.
//
// The new parent must be a current head, and it must not already be
// reachable from key, since that would close a cycle. The probe walks the
// whole chain below parent, so a cycle elsewhere in that chain fails the
// rebase as well. Nothing is written unless all checks pass.
func (g *Graph) Rebase(key, parent string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rev, err := g.validateRebase(key, parent)
	if err != nil {
		return err
	}

	if err := g.store.write(rev); err != nil {
		return err
	}
	g.revisions[rev.Key] = rev

	return nil
}

func (g *Graph) validateAdd(rev Revision) error {
	if !validKey(rev.Key) {
		return squillerrors.NewInvalidKeyError(rev.Key)
	}
	if _, ok := g.revisions[rev.Key]; ok {
		return squillerrors.NewDuplicateRevisionError(rev.Key)
	}
	if rev.Parent != "" {
		if _, ok := g.revisions[rev.Parent]; !ok {
			return squillerrors.NewUnknownParentError(rev.Parent)
		}
	}
	return nil
}

func (g *Graph) validateRebase(key, parent string) (Revision, error) {
	rev, ok := g.revisions[key]
	if !ok {
		return Revision{}, squillerrors.NewRevisionNotFoundError(key)
	}

	if !slices.Contains(g.headsInternal(), parent) {
		return Revision{}, squillerrors.NewInvalidParentError(parent)
	}

	// Rebasing onto itself or onto a descendant would close a cycle; in
	// both cases parent is reached by following parents down to key.
	cycle, err := g.sequenceInternal(key, parent)
	switch {
	case err == nil:
		return Revision{}, squillerrors.NewCycleError(cycle)
	case !errors.Is(err, squillerrors.ErrNoSequence):
		return Revision{}, err
	}

	rev.Parent = parent
	return rev, nil
}

// validKey reports whether key can name a single revision directory and be
// read back as a parent value.
func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.ContainsRune(key, '/') || strings.ContainsRune(key, filepath.Separator) {
		return false
	}
	return !strings.ContainsAny(key, " \t\r\n\f")
}
