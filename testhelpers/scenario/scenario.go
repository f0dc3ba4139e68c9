// Package scenario provides a high-level test scenario that combines a
// temporary revision repository, an Engine, and a runtime Context to provide
// a terse API for tests.
package scenario

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"squill.dev/squill/internal/engine"
	"squill.dev/squill/internal/runtime"
	"squill.dev/squill/internal/tui"
)

// Scenario represents a revision repository under test
type Scenario struct {
	T       *testing.T
	Dir     string // Repository root
	Engine  *engine.Graph
	Context *runtime.Context
	Output  *bytes.Buffer // Console output of Context.Splog

	nextKey int
}

// NewScenario creates a scenario with an empty repository that does not
// exist on disk until the first revision is added. Generated keys are
// r0, r1, r2, ... in order.
func NewScenario(t *testing.T) *Scenario {
	t.Helper()

	s := &Scenario{
		T:      t,
		Dir:    filepath.Join(t.TempDir(), "repo"),
		Output: &bytes.Buffer{},
	}
	s.Reopen()
	return s
}

// KeyGenerator returns deterministic keys r0, r1, ... shared by every engine
// opened through this scenario.
func (s *Scenario) KeyGenerator() engine.KeyGenerator {
	return func() (string, error) {
		key := fmt.Sprintf("r%d", s.nextKey)
		s.nextKey++
		return key, nil
	}
}

// Reopen reads the repository from disk again and replaces Engine and Context.
func (s *Scenario) Reopen() *Scenario {
	s.T.Helper()

	eng, err := engine.Open(s.Dir, engine.WithKeyGenerator(s.KeyGenerator()))
	require.NoError(s.T, err)

	s.Engine = eng
	s.Context = runtime.NewContext(eng)
	s.Context.Splog = tui.NewSplogWithWriter(s.Output)
	return s
}

// Add adds a revision with a generated key and returns the key
func (s *Scenario) Add(parent string) string {
	s.T.Helper()

	key, err := s.Engine.Add("", parent)
	require.NoError(s.T, err)
	return key
}

// Chain adds n revisions, each the parent of the next, below parent
func (s *Scenario) Chain(parent string, n int) []string {
	s.T.Helper()

	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parent = s.Add(parent)
		keys = append(keys, parent)
	}
	return keys
}

// MetadataPath returns the path of a revision's metadata file
func (s *Scenario) MetadataPath(key string) string {
	return filepath.Join(s.Dir, key, engine.RevisionFilename)
}

// WriteMetadata overwrites a revision's metadata file by hand
func (s *Scenario) WriteMetadata(key, content string) *Scenario {
	s.T.Helper()

	err := os.WriteFile(s.MetadataPath(key), []byte(content), 0600)
	require.NoError(s.T, err)
	return s
}

// AppendMetadata appends to a revision's metadata file
func (s *Scenario) AppendMetadata(key, content string) *Scenario {
	s.T.Helper()

	f, err := os.OpenFile(s.MetadataPath(key), os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(s.T, err)
	_, err = f.WriteString(content)
	require.NoError(s.T, err)
	require.NoError(s.T, f.Close())
	return s
}

// Snapshot returns the content of every file in the repository keyed by
// slash-separated relative path
func (s *Scenario) Snapshot() map[string]string {
	s.T.Helper()

	files := make(map[string]string)
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		return files
	}

	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(s.T, err)
	return files
}

// RequirePersisted asserts that reading the repository again yields the
// same heads and the same sequence for every head.
func (s *Scenario) RequirePersisted() {
	s.T.Helper()

	reopened, err := engine.Open(s.Dir)
	require.NoError(s.T, err)

	require.Equal(s.T, s.Engine.Heads(), reopened.Heads())
	for _, head := range s.Engine.Heads() {
		expected, err := s.Engine.Sequence("", head)
		require.NoError(s.T, err)
		actual, err := reopened.Sequence("", head)
		require.NoError(s.T, err)
		require.Equal(s.T, expected, actual)
	}
}

// RequireUnmodified runs fn and asserts that neither the in-memory graph nor
// any file in the repository changed.
func (s *Scenario) RequireUnmodified(fn func()) {
	s.T.Helper()

	s.RequireUnmodifiedFiles(fn)
	s.RequirePersisted()
}

// RequireUnmodifiedFiles is RequireUnmodified for repositories whose
// sequences cannot be computed, such as ones containing a cycle.
func (s *Scenario) RequireUnmodifiedFiles(fn func()) {
	s.T.Helper()

	filesBefore := s.Snapshot()
	revsBefore := s.Engine.AllRevisions()

	fn()

	require.Equal(s.T, revsBefore, s.Engine.AllRevisions())
	require.Equal(s.T, filesBefore, s.Snapshot())
}
