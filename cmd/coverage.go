package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	m "gooze.dev/pkg/testrunner/internal/model"
)

const coverageLongDescription = `Run the tests of the given packages while measuring statement coverage
of the --coverpkg patterns (default: the tested packages).

With --per-test every selected test runs on its own and the coverage of
each is reported separately.

` + packagesHelp

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	sel := &selectionFlags{}

	var coverPackages []string

	var perTest bool

	cmd := &cobra.Command{
		Use:     "coverage [packages...]",
		Short:   "Measure statement coverage of a test run",
		Long:    coverageLongDescription,
		PreRunE: bindEngineFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applySettings(cmd, sel.noBlacklist); err != nil {
				return err
			}

			ctx := cmd.Context()
			ui := newUI(cmd)
			opts := buildOptions(args, sel.tests, sel.blacklist, sel.compiled)
			binaries := strings.Join(coverPackages, ",")
			started := time.Now()

			if perTest {
				measured, err := orchestrator.CoveragePerTest(ctx, opts, binaries, ui.DisplayProgress)
				if err != nil {
					return err
				}

				if err := ui.DisplayCoveragePerTest(ctx, measured); err != nil {
					return err
				}

				record := newRecord(m.RunKindCoveragePerTest, opts, started)
				record.PerTest = measured

				return saveRecord(ctx, record)
			}

			coverage, err := orchestrator.Coverage(ctx, opts, binaries)
			if err != nil {
				return err
			}

			if err := ui.DisplayCoverage(ctx, coverage); err != nil {
				return err
			}

			record := newRecord(m.RunKindCoverage, opts, started)
			record.Coverage = &coverage

			return saveRecord(ctx, record)
		},
	}

	configureSelectionFlags(cmd, sel)
	configureEngineFlags(cmd)
	cmd.Flags().StringSliceVar(&coverPackages, coverPkgFlagName, nil, "package patterns to measure (comma separated or repeated)")
	cmd.Flags().BoolVar(&perTest, perTestFlagName, false, "measure each selected test on its own")

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
