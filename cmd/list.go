package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the tests the given packages declare, in the order they
would run, and mark those that are skipped unconditionally.

` + packagesHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	sel := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "list [packages...]",
		Short: "List selected tests",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applySettings(cmd, sel.noBlacklist); err != nil {
				return err
			}

			ctx := cmd.Context()
			opts := buildOptions(args, sel.tests, sel.blacklist, false)

			tests, err := orchestrator.ListTests(ctx, opts)
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayTests(ctx, tests)
		},
	}

	cmd.Flags().StringSliceVarP(&sel.tests, testsFlagName, "t", nil, "list only these top-level tests")
	cmd.Flags().StringSliceVar(&sel.blacklist, blacklistFlagName, nil, "tests to leave out, in addition to run.blacklist")
	cmd.Flags().BoolVar(&sel.noBlacklist, noBlacklistName, false, "ignore the configured run.blacklist")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
