package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newSequenceCmd creates the sequence command
func newSequenceCmd() *cobra.Command {
	var opts actions.SequenceOptions

	cmd := &cobra.Command{
		Use:     "sequence",
		Aliases: []string{"seq"},
		Short:   "Print revisions in deploy order",
		Long: `Print the revisions from base to target in the order they are deployed,
one per line. Base defaults to the root and target to the head.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SequenceAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Base, "base", "", "First revision of the sequence")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Last revision of the sequence")
	_ = cmd.RegisterFlagCompletionFunc("base", common.CompleteRevisions)
	_ = cmd.RegisterFlagCompletionFunc("target", common.CompleteRevisions)

	return cmd
}
