package cli

import (
	"github.com/spf13/cobra"

	"squill.dev/squill/internal/actions"
	"squill.dev/squill/internal/cli/common"
	"squill.dev/squill/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var opts actions.LogOptions

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"l"},
		Short:   "Show the revision tree",
		Long: `Show every revision as a tree, children above their parent.
Heads are marked with ◉.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Print the log upside down, roots first")
	cmd.Flags().BoolVar(&opts.NoStyle, "no-style", false, "Print without colors")

	return cmd
}
