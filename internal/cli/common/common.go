// Package common provides shared helper functions for CLI commands.
package common

import (
	"io"

	"github.com/spf13/cobra"

	"squill.dev/squill/internal/runtime"
	"squill.dev/squill/internal/tui"
)

// RepositoryFlag is the persistent flag naming the revision repository
const RepositoryFlag = "repository"

// contextOptions builds runtime options from the command's flags and output
func contextOptions(cmd *cobra.Command, out io.Writer) runtime.Options {
	repository, _ := cmd.Flags().GetString(RepositoryFlag)
	return runtime.Options{
		Repository: repository,
		Out:        out,
	}
}

// Run is a helper that provides a runtime context to a command's execution function.
// Errors are reported through Splog before being returned.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(contextOptions(cmd, cmd.OutOrStdout()))
	if err != nil {
		tui.NewSplogWithWriter(cmd.ErrOrStderr()).Error("%v", err)
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()

	if err := fn(ctx); err != nil {
		ctx.Splog.Error("%v", err)
		return err
	}
	return nil
}

// CompleteRevisions is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns all revision keys in the repository.
func CompleteRevisions(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := runtime.GetContext(contextOptions(cmd, io.Discard))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Splog.Close() }()

	revisions := ctx.Engine.AllRevisions()
	keys := make([]string, 0, len(revisions))
	for _, rev := range revisions {
		keys = append(keys, rev.Key)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// CompleteHeads completes head revision keys
func CompleteHeads(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := runtime.GetContext(contextOptions(cmd, io.Discard))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Splog.Close() }()

	return ctx.Engine.Heads(), cobra.ShellCompDirectiveNoFileComp
}
