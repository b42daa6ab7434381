package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// selectionFlags are the per-invocation selection flags.
type selectionFlags struct {
	tests       []string
	blacklist   []string
	noBlacklist bool
	compiled    bool
}

// Engine flags are bound to viper when their command executes.
var (
	timeoutFlag    int64
	extraFlagsFlag []string
	envFilesFlag   []string
	namingFlag     string
	aliasFlag      []string
)

const runLongDescription = `Run the tests of the given packages (default: the project directory)
and report each test as passing, failing, assumption failing or ignored.

Exits with 1 when a test failed, 3 when the deadline passed, 4 when a
package or test could not be found and 5 when the engine failed.

` + packagesHelp

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	sel := &selectionFlags{}

	cmd := &cobra.Command{
		Use:     "run [packages...]",
		Short:   "Run tests and classify the outcome",
		Long:    runLongDescription,
		PreRunE: bindEngineFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applySettings(cmd, sel.noBlacklist); err != nil {
				return err
			}

			ctx := cmd.Context()
			opts := buildOptions(args, sel.tests, sel.blacklist, sel.compiled)
			started := time.Now()

			result, err := orchestrator.Run(ctx, opts)
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			if err := ui.DisplayTestResult(ctx, result); err != nil {
				return err
			}

			record := newRecord(m.RunKindTests, opts, started)
			record.Result = result

			if err := saveRecord(ctx, record); err != nil {
				return err
			}

			if len(result.FailingTests) > 0 {
				return errFailingTests
			}

			return nil
		},
	}

	configureSelectionFlags(cmd, sel)
	configureEngineFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureSelectionFlags(cmd *cobra.Command, sel *selectionFlags) {
	cmd.Flags().StringSliceVarP(&sel.tests, testsFlagName, "t", nil, "run only these top-level tests (comma separated or repeated)")
	cmd.Flags().StringSliceVar(&sel.blacklist, blacklistFlagName, nil, "tests to leave out of this run, in addition to run.blacklist")
	cmd.Flags().BoolVar(&sel.noBlacklist, noBlacklistName, false, "ignore the configured run.blacklist")
	cmd.Flags().BoolVar(&sel.compiled, compiledFlagName, viper.GetBool(compiledKey), "run precompiled test binaries instead of go test")
}

func configureEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&timeoutFlag, timeoutFlagName, viper.GetInt64(timeoutKey), "deadline of the whole run in seconds (0 disables it)")
	cmd.Flags().StringArrayVar(&extraFlagsFlag, extraFlagsName, viper.GetStringSlice(extraFlagsKey), "extra flag passed to go test (can be repeated)")
	cmd.Flags().StringArrayVar(&envFilesFlag, envFileFlagName, viper.GetStringSlice(envFileKey), "dotenv file loaded into the test environment (can be repeated)")
	cmd.Flags().StringVar(&namingFlag, namingFlagName, viper.GetString(namingKey), "report subtests as instances or under their declaring test (instance|declaring)")
	cmd.Flags().StringArrayVar(&aliasFlag, aliasFlagName, viper.GetStringSlice(aliasesKey), "report a test under another name, as NAME=ALIAS (can be repeated)")
}

func bindEngineFlags(cmd *cobra.Command, _ []string) error {
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutKey)
	bindFlagToConfig(cmd.Flags().Lookup(extraFlagsName), extraFlagsKey)
	bindFlagToConfig(cmd.Flags().Lookup(envFileFlagName), envFileKey)
	bindFlagToConfig(cmd.Flags().Lookup(namingFlagName), namingKey)
	bindFlagToConfig(cmd.Flags().Lookup(aliasFlagName), aliasesKey)

	return nil
}
