package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var opts actions.AddOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a revision",
		Long: `Add a revision with empty deploy and revert scripts and print its key.

The new revision is based on the head unless --parent or --root is given.
A random key is generated unless --key is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.AddAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Key, "key", "", "Key of the new revision")
	cmd.Flags().StringVarP(&opts.Parent, "parent", "p", "", "Parent of the new revision")
	cmd.Flags().BoolVar(&opts.Root, "root", false, "Add a revision without parent")
	cmd.MarkFlagsMutuallyExclusive("parent", "root")
	_ = cmd.RegisterFlagCompletionFunc("parent", common.CompleteRevisions)

	return cmd
}
