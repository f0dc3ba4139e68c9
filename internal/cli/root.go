package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"squill.dev/squill/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "squill",
		Short: "Squill manages a tree of database revisions",
		Long: `Squill manages a tree of database revisions.

Each revision is a directory holding a deploy script, a revert script and a
metadata file naming its parent. Squill computes the order in which
revisions are deployed and keeps the tree linear by rebasing branches.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP(common.RepositoryFlag, "r", "", "Revision repository directory (overrides .squill.yaml)")
	_ = rootCmd.MarkPersistentFlagDirname(common.RepositoryFlag)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newHeadsCmd())
	rootCmd.AddCommand(newHeadCmd())
	rootCmd.AddCommand(newSequenceCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRebaseCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
