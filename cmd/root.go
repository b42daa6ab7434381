// Package cmd provides the root command and CLI setup for testrunner.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/testrunner/internal/adapter"
	"gooze.dev/pkg/testrunner/internal/controller"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// Process exit codes.
const (
	exitOK         = 0
	exitFailing    = 1
	exitTimeout    = 3
	exitResolution = 4
	exitExecution  = 5
)

// errFailingTests is returned by commands whose run had failing tests.
var errFailingTests = errors.New("tests failed")

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var goTestAdapter adapter.TestRunnerAdapter
var binaryTestAdapter adapter.TestRunnerAdapter
var coverageAdapter adapter.CoverageAdapter
var envFileAdapter adapter.EnvFileAdapter
var reportStore adapter.ReportStore
var settings *domain.Settings
var orchestrator domain.Orchestrator

// newUI builds the UI for the executing command.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

// Root-level flags shared by every command.
var (
	recordPathFlag string
	projectFlag    string
	verboseFlag    bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	goTestAdapter = adapter.NewGoTestRunnerAdapter()
	binaryTestAdapter = adapter.NewBinaryTestRunnerAdapter(fsAdapter)
	coverageAdapter = adapter.NewProfileCoverageAdapter()
	envFileAdapter = adapter.NewDotEnvFileAdapter()
	reportStore = adapter.NewReportStore()
	settings = domain.NewSettings()
	orchestrator = domain.NewOrchestrator(
		fsAdapter,
		goFileAdapter,
		goTestAdapter,
		binaryTestAdapter,
		coverageAdapter,
		settings,
	)
}

const packagesHelp = `Packages are given relative to the project directory (./pkg), as
import paths inside the project module (example.com/mod/pkg), or as
absolute directories. Tests run in the order the packages are given.`

const rootLongDescription = `testrunner runs the Go tests of selected packages under a deadline,
classifies every test as passing, failing, assumption failing or ignored,
and measures statement coverage in aggregate or per test.

` + packagesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "testrunner",
		Short:         "Go test execution orchestrator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&recordPathFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"file the run record is written to and read from",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&projectFlag, projectFlagName, "b", viper.GetString(projectKey), "project directory holding the packages")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "mirror engine output to stderr and log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errFailingTests) {
		newUI(rootCmd).DisplayError(context.Background(), err)
	}

	code := exitCode(err)
	if code != exitOK {
		stop()
		os.Exit(code)
	}
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, m.ErrTimeout):
		return exitTimeout
	case errors.Is(err, m.ErrResolution):
		return exitResolution
	case errors.Is(err, m.ErrExecution):
		return exitExecution
	default:
		return exitFailing
	}
}

// applySettings loads the configured run settings into the shared holder.
// The configured blacklist replaces the one held, unless ignoreBlacklist
// asks to run without it.
func applySettings(cmd *cobra.Command, ignoreBlacklist bool) error {
	loaded, err := loadRunSettings(viper.GetViper())
	if err != nil {
		return err
	}

	env, err := envFileAdapter.Load(cmd.Context(), loaded.EnvFiles...)
	if err != nil {
		return err
	}

	settings.Update(func(config *domain.RunConfig) {
		config.Timeout = loaded.Timeout
		config.ExtraFlags = loaded.ExtraFlags
		config.Env = env
		config.Persistence = loaded.Persistence
		config.Naming = loaded.Naming
		config.Aliases = loaded.Aliases
		config.Compiled = loaded.Compiled
		config.GoBinary = loaded.GoBinary
		config.Verbose = loaded.Verbose
		config.Output = nil

		if loaded.Verbose {
			config.Output = cmd.ErrOrStderr()
		}
	})
	settings.ClearBlacklist()

	if !ignoreBlacklist {
		settings.AddToBlacklist(loaded.Blacklist...)
	}

	return nil
}

// buildOptions turns the command's flags and positional packages into the
// orchestrator's configuration surface.
func buildOptions(packages []string, methods []string, blacklist []string, compiled bool) m.Options {
	classes := make([]string, 0, len(packages))
	for _, pkg := range packages {
		if pkg = strings.TrimSpace(pkg); pkg != "" {
			classes = append(classes, pkg)
		}
	}

	if len(classes) == 0 {
		classes = append(classes, ".")
	}

	return m.Options{
		Binaries:  viper.GetString(projectKey),
		Classes:   classes,
		Methods:   methods,
		Blacklist: blacklist,
		Compiled:  compiled,
	}
}

// saveRecord writes a run record to the configured output file. An empty
// output disables recording.
func saveRecord(ctx context.Context, record m.RunRecord) error {
	path := viper.GetString(outputFlagName)
	if strings.TrimSpace(path) == "" {
		return nil
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	return reportStore.SaveReport(ctx, m.Path(path), record)
}

func newRecord(kind m.RunKind, opts m.Options, started time.Time) m.RunRecord {
	return m.RunRecord{
		ID:       uuid.NewString(),
		Kind:     kind,
		Started:  started,
		Duration: time.Since(started),
		Options:  opts,
	}
}
