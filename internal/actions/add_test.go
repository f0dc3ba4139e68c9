package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/engine"
	squillerrors "squill.dev/squill/internal/errors"
	"squill.dev/squill/testhelpers/scenario"
)

func TestAddAction(t *testing.T) {
	t.Run("first revision is a root", func(t *testing.T) {
		s := scenario.NewScenario(t)

		require.NoError(t, actions.AddAction(s.Context, actions.AddOptions{}))
		require.Equal(t, "r0\n", s.Output.String())

		rev, ok := s.Engine.GetRevision("r0")
		require.True(t, ok)
		require.True(t, rev.IsRoot())
	})

	t.Run("defaults parent to the unique head", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 2)

		require.NoError(t, actions.AddAction(s.Context, actions.AddOptions{}))

		rev, ok := s.Engine.GetRevision("r2")
		require.True(t, ok)
		require.Equal(t, engine.Revision{Key: "r2", Parent: "r1"}, rev)
	})

	t.Run("explicit key and parent", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		s.Add(r0)

		err := actions.AddAction(s.Context, actions.AddOptions{Key: "branch", Parent: r0})
		require.NoError(t, err)
		require.Equal(t, "branch\n", s.Output.String())
		require.Equal(t, []string{"branch", "r1"}, s.Engine.Heads())
	})

	t.Run("root flag adds a second tree", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Add("")

		require.NoError(t, actions.AddAction(s.Context, actions.AddOptions{Root: true}))
		require.Equal(t, []string{"r0", "r1"}, s.Engine.Heads())
	})

	t.Run("root and parent conflict", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")

		s.RequireUnmodified(func() {
			err := actions.AddAction(s.Context, actions.AddOptions{Root: true, Parent: r0})
			require.Error(t, err)
		})
	})

	t.Run("multiple heads need an explicit parent", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Add("")
		s.Add("")

		s.RequireUnmodified(func() {
			err := actions.AddAction(s.Context, actions.AddOptions{})
			require.ErrorIs(t, err, squillerrors.ErrMultipleHeads)
		})
		require.Contains(t, s.Output.String(), "--parent")
	})

	t.Run("unknown parent", func(t *testing.T) {
		s := scenario.NewScenario(t)

		err := actions.AddAction(s.Context, actions.AddOptions{Parent: "foo"})
		require.ErrorIs(t, err, squillerrors.ErrUnknownParent)
		require.Empty(t, s.Engine.AllRevisions())
	})
}

func TestRebaseAction(t *testing.T) {
	t.Run("rebases onto a head", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		r1 := s.Add(r0)
		r2 := s.Add(r0)

		err := actions.RebaseAction(s.Context, actions.RebaseOptions{Key: r2, Onto: r1})
		require.NoError(t, err)
		require.Contains(t, s.Output.String(), "Rebased")
		requireHeads(t, s, r2)
		s.RequirePersisted()
	})

	t.Run("requires key and onto", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")

		require.Error(t, actions.RebaseAction(s.Context, actions.RebaseOptions{Onto: r0}))
		require.Error(t, actions.RebaseAction(s.Context, actions.RebaseOptions{Key: r0}))
	})

	t.Run("propagates cycle errors", func(t *testing.T) {
		s := scenario.NewScenario(t)
		keys := s.Chain("", 3)

		s.RequireUnmodified(func() {
			err := actions.RebaseAction(s.Context, actions.RebaseOptions{Key: keys[1], Onto: keys[2]})
			require.ErrorIs(t, err, squillerrors.ErrCycle)
		})
	})
}

func requireHeads(t *testing.T, s *scenario.Scenario, expected ...string) {
	t.Helper()
	require.Equal(t, expected, s.Engine.Heads())
}
