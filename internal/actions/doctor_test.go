package actions_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/testhelpers/scenario"
)

func TestDoctor(t *testing.T) {
	t.Run("healthy chain", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 3)

		report := actions.Doctor(s.Engine)
		require.True(t, report.OK())
		require.Empty(t, report.Cycles)
		require.Empty(t, report.DanglingParents)
		require.Equal(t, []string{"r2"}, report.Heads)
		require.False(t, report.MultipleHeads)
	})

	t.Run("empty repository is healthy", func(t *testing.T) {
		s := scenario.NewScenario(t)

		report := actions.Doctor(s.Engine)
		require.True(t, report.OK())
		require.Empty(t, report.Heads)
	})

	t.Run("multiple heads", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Add("")
		s.Add("")

		report := actions.Doctor(s.Engine)
		require.False(t, report.OK())
		require.True(t, report.MultipleHeads)
		require.Equal(t, []string{"r0", "r1"}, report.Heads)
	})

	t.Run("reports each cycle once", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		r1 := s.Add(r0)
		s.Add(r1)
		s.WriteMetadata(r0, fmt.Sprintf("Parent: %s\n", r1)).Reopen()

		report := actions.Doctor(s.Engine)
		require.False(t, report.OK())
		require.Len(t, report.Cycles, 1)
		require.ElementsMatch(t, []string{r0, r1}, report.Cycles[0])
		require.Equal(t, []string{"r2"}, report.Heads)
	})

	t.Run("dangling parent", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		s.Add(r0)
		s.WriteMetadata(r0, "Parent: gone\n").Reopen()

		report := actions.Doctor(s.Engine)
		require.False(t, report.OK())
		require.Empty(t, report.Cycles)
		require.Equal(t, map[string]string{r0: "gone"}, report.DanglingParents)
	})
}

func TestDoctorAction(t *testing.T) {
	t.Run("passes on a healthy repository", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Chain("", 2)

		require.NoError(t, actions.DoctorAction(s.Context, actions.DoctorOptions{}))
		require.Contains(t, s.Output.String(), "All checks passed")
	})

	t.Run("warns about a missing repository directory", func(t *testing.T) {
		s := scenario.NewScenario(t)

		require.NoError(t, actions.DoctorAction(s.Context, actions.DoctorOptions{}))
		require.Contains(t, s.Output.String(), "does not exist yet")
	})

	t.Run("fails on a cycle", func(t *testing.T) {
		s := scenario.NewScenario(t)
		r0 := s.Add("")
		r1 := s.Add(r0)
		s.WriteMetadata(r0, fmt.Sprintf("Parent: %s\n", r1)).Reopen()

		err := actions.DoctorAction(s.Context, actions.DoctorOptions{})
		require.EqualError(t, err, "doctor found 1 error(s)")
		require.Contains(t, s.Output.String(), "cycle detected in revision graph")
	})

	t.Run("fails on multiple heads", func(t *testing.T) {
		s := scenario.NewScenario(t)
		s.Add("")
		s.Add("")

		err := actions.DoctorAction(s.Context, actions.DoctorOptions{})
		require.Error(t, err)
		require.Contains(t, s.Output.String(), "multiple heads: r0, r1")
	})
}
