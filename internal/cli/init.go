package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize squill in the current project",
		Long: `Write .squill.yaml at the project root and create the revision repository.

The project root is the nearest directory containing .squill.yaml, or the
root of the enclosing git worktree, or the current directory. Pass
--repository to record a repository directory other than "revisions",
relative to the project root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repository, _ := cmd.Flags().GetString(common.RepositoryFlag)
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx, actions.InitOptions{Repository: repository})
			})
		},
	}

	return cmd
}
