package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose problems in the revision repository",
		Long: `Run diagnostic checks on the project and its revision repository.

The doctor command checks:
  - Project: configuration file and repository directory
  - Revisions: cycles, missing parents, and multiple heads`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DoctorAction(ctx, actions.DoctorOptions{})
			})
		},
	}

	return cmd
}
