package engine

import (
	"cmp"
	"slices"

	squillerrors "squill.dev/squill/internal/errors"
)

// AllRevisions returns all revisions ordered by key
func (g *Graph) AllRevisions() []Revision {
	g.mu.RLock()
	defer g.mu.RUnlock()

	revisions := make([]Revision, 0, len(g.revisions))
	for _, rev := range g.revisions {
		revisions = append(revisions, rev)
	}
	slices.SortFunc(revisions, func(a, b Revision) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return revisions
}

// GetRevision returns the revision with the given key
func (g *Graph) GetRevision(key string) (Revision, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rev, ok := g.revisions[key]
	return rev, ok
}

// GetChildren returns the keys of all revisions whose parent is key
func (g *Graph) GetChildren(key string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if key == "" {
		return nil
	}

	var children []string
	for _, rev := range g.revisions {
		if rev.Parent == key {
			children = append(children, rev.Key)
		}
	}
	slices.Sort(children)
	return children
}

// Heads returns all head revisions ordered by key.
// Head revisions are all revisions that are not also parent revisions.
func (g *Graph) Heads() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.headsInternal()
}

// Head returns the only head revision, or an empty string for an empty repository.
// It fails with a HeadError if there are multiple heads.
func (g *Graph) Head() (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.headInternal()
}

// Sequence returns the keys of all revisions between base and target, both inclusive.
//
// An empty base selects the root reached by following parents from target.
// An empty target selects the current head, which fails with a HeadError
// if there are multiple heads. A CycleError carries only the revisions
// forming the cycle. A SequenceError is returned if base is not reached
// by following parents from target.
func (g *Graph) Sequence(base, target string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sequenceInternal(base, target)
}

// headsInternal computes heads without locking (caller must hold lock)
func (g *Graph) headsInternal() []string {
	parents := make(map[string]bool, len(g.revisions))
	for _, rev := range g.revisions {
		if rev.Parent != "" {
			parents[rev.Parent] = true
		}
	}

	var heads []string
	for key := range g.revisions {
		if !parents[key] {
			heads = append(heads, key)
		}
	}
	slices.Sort(heads)
	return heads
}

// headInternal resolves the unique head without locking (caller must hold lock)
func (g *Graph) headInternal() (string, error) {
	heads := g.headsInternal()
	switch len(heads) {
	case 0:
		return "", nil
	case 1:
		return heads[0], nil
	default:
		return "", squillerrors.NewHeadError(heads)
	}
}

// sequenceInternal walks parents from target without locking (caller must hold lock)
func (g *Graph) sequenceInternal(base, target string) ([]string, error) {
	if target == "" {
		head, err := g.headInternal()
		if err != nil {
			return nil, err
		}
		target = head
	} else if _, ok := g.revisions[target]; !ok {
		return nil, squillerrors.NewRevisionNotFoundError(target)
	}

	// Revisions in reverse, from target towards base, and their positions.
	var seq []string
	index := make(map[string]int)

	for key := target; key != ""; {
		if i, ok := index[key]; ok {
			// Omit revisions collected before entering the cycle.
			cycle := slices.Clone(seq[i:])
			slices.Reverse(cycle)
			return nil, squillerrors.NewCycleError(cycle)
		}

		index[key] = len(seq)
		seq = append(seq, key)

		if base != "" && key == base {
			break
		}

		rev, ok := g.revisions[key]
		if !ok {
			return nil, squillerrors.NewRevisionNotFoundError(key)
		}
		key = rev.Parent
	}

	if len(seq) > 0 && base != "" && seq[len(seq)-1] != base {
		return nil, squillerrors.NewSequenceError(base, target)
	}

	slices.Reverse(seq)
	return seq, nil
}
