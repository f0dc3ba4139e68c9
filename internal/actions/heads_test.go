package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"squill.dev/squill/internal/actions"
	squillerrors "squill.dev/squill/internal/errors"
	"squill.dev/squill/testhelpers/scenario"
)

func TestHeadsAction(t *testing.T) {
	t.Run("prints nothing for an empty repository", func(t *testing.T) {
		s := scenario.NewScenario(t)

		require.NoError(t, actions.HeadsAction(s.Context))
		require.NoError(t, actions.HeadAction(s.Context))
		require.Empty(t, s.Output.String())
	})

	t.Run("prints every head", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		s.Add(r0)
		s.Add(r0)

		require.NoError(t, actions.HeadsAction(s.Context))
		require.Equal(t, "r1\nr2\n", s.Output.String())
	})

	t.Run("head fails with multiple heads", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Add("")
		s.Add("")

		err := actions.HeadAction(s.Context)
		require.ErrorIs(t, err, squillerrors.ErrMultipleHeads)
		require.Empty(t, s.Output.String())
	})

	t.Run("head prints the unique head", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 2)

		require.NoError(t, actions.HeadAction(s.Context))
		require.Equal(t, "r1\n", s.Output.String())
	})
}

func TestSequenceAction(t *testing.T) {
	t.Run("prints the sequence in deploy order", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 3)

		require.NoError(t, actions.SequenceAction(s.Context, actions.SequenceOptions{}))
		require.Equal(t, "r0\nr1\nr2\n", s.Output.String())
	})

	t.Run("honors base and target", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 4)

		err := actions.SequenceAction(s.Context, actions.SequenceOptions{Base: "r1", Target: "r2"})
		require.NoError(t, err)
		require.Equal(t, "r1\nr2\n", s.Output.String())
	})

	t.Run("propagates no-sequence", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 3)

		err := actions.SequenceAction(s.Context, actions.SequenceOptions{Base: "r2", Target: "r1"})
		require.ErrorIs(t, err, squillerrors.ErrNoSequence)
		require.Empty(t, s.Output.String())
	})
}
