package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd() *cobra.Command {
	var onto string

	cmd := &cobra.Command{
		Use:   "rebase KEY --onto PARENT",
		Short: "Move a revision onto a head",
		Long: `Make PARENT the parent of revision KEY.

PARENT must be a head, so rebasing the first revision of a branch onto the
head of another branch joins the two. Rebases that would form a cycle are
rejected and leave the repository unchanged.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteRevisions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RebaseAction(ctx, actions.RebaseOptions{
					Key:  args[0],
					Onto: onto,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&onto, "onto", "o", "", "New parent revision, must be a head")
	_ = cmd.MarkFlagRequired("onto")
	_ = cmd.RegisterFlagCompletionFunc("onto", common.CompleteHeads)

	return cmd
}
