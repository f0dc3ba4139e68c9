package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
)

// newHeadsCmd creates the heads command
func newHeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heads",
		Short: "Print all head revisions",
		Long:  "Print every revision that is not the parent of another revision, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.HeadsAction)
		},
	}
}

// newHeadCmd creates the head command
func newHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Print the head revision",
		Long: `Print the head revision.

Nothing is printed for an empty repository. Fails if the repository has
more than one head; use 'squill rebase' to join them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.HeadAction)
		},
	}
}
