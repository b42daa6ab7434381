package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/testrunner/internal/adapter"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func passingResult(names ...string) *m.TestResult {
	result := m.NewTestResult()
	result.RunningTests = append(result.RunningTests, names...)
	result.PassingTests = append(result.PassingTests, names...)

	return result
}

func TestRunCmd_PassesOptions(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, out := newTestRoot(t, newRunCmd())

	mockOrchestrator.EXPECT().
		Run(mock.Anything, m.Options{
			Binaries:  "./project",
			Classes:   []string{"./pkg", "./other"},
			Methods:   []string{"TestA", "TestB"},
			Blacklist: []string{"TestC"},
			Compiled:  true,
		}).
		Return(passingResult("TestA", "TestB"), nil).
		Once()

	cmd.SetArgs([]string{"run", "-b", "./project", "-t", "TestA,TestB", "--blacklist", "TestC", "--compiled", "./pkg", "./other"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "TestA")
	assert.Contains(t, out.String(), "running 2, passing 2")

	record, err := adapter.NewReportStore().LoadReport(context.Background(), m.Path(viper.GetString(outputFlagName)))
	require.NoError(t, err)
	assert.Equal(t, m.RunKindTests, record.Kind)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, []string{"TestA", "TestB"}, record.Result.PassingTests)
	assert.Equal(t, []string{"./pkg", "./other"}, record.Options.Classes)
}

func TestRunCmd_FailingTests(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, out := newTestRoot(t, newRunCmd())

	result := m.NewTestResult()
	result.RunningTests = []string{"TestA"}
	result.FailingTests = []m.Failure{{TestCaseName: "TestA", Message: "want 1, got 2"}}

	mockOrchestrator.EXPECT().Run(mock.Anything, mock.Anything).Return(result, nil).Once()

	cmd.SetArgs([]string{"run", "./pkg"})
	err := cmd.Execute()

	require.ErrorIs(t, err, errFailingTests)
	assert.Equal(t, exitFailing, exitCode(err))
	assert.Contains(t, out.String(), "want 1, got 2")
}

func TestRunCmd_PropagatesTaxonomy(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, out := newTestRoot(t, newRunCmd())

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Return(nil, &m.TimeoutError{Deadline: time.Second}).
		Once()

	cmd.SetArgs([]string{"run", "./slow"})
	err := cmd.Execute()

	require.ErrorIs(t, err, m.ErrTimeout)
	assert.Equal(t, exitTimeout, exitCode(err))
	assert.Empty(t, out.String())

	_, statErr := os.Stat(viper.GetString(outputFlagName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunCmd_AppliesSettings(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, _ := newTestRoot(t, newRunCmd())

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FIXTURE_VALUE=expected\nOTHER=1\n"), 0o600))

	t.Setenv("TESTRUNNER_RUN_BLACKLIST", "TestFlaky TestSlow")
	t.Setenv("TESTRUNNER_RUN_PERSISTENCE", "false")

	var seen domain.RunConfig

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ m.Options) { seen = settings.Snapshot() }).
		Return(passingResult("TestA"), nil).
		Once()

	cmd.SetArgs([]string{
		"run",
		"--timeout", "7",
		"--naming", "declaring",
		"--flags=-race",
		"--flags=-tags=integration",
		"--env-file", envFile,
		"./pkg",
	})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 7*time.Second, seen.Timeout)
	assert.Equal(t, domain.NamingDeclaring, seen.Naming)
	assert.Equal(t, []string{"-race", "-tags=integration"}, seen.ExtraFlags)
	assert.Equal(t, []string{"FIXTURE_VALUE=expected", "OTHER=1"}, seen.Env)
	assert.False(t, seen.Persistence)
	assert.Nil(t, seen.Output)
	assert.Equal(t, []string{"TestFlaky", "TestSlow"}, settings.Blacklist())
}

func TestRunCmd_Aliases(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, _ := newTestRoot(t, newRunCmd())

	var seen domain.RunConfig

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ m.Options) { seen = settings.Snapshot() }).
		Return(passingResult("TestRenamed"), nil).
		Once()

	cmd.SetArgs([]string{"run", "--alias", "TestA=TestRenamed", "--alias", "TestB = TestRenamed", "./pkg"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, map[string]string{"TestA": "TestRenamed", "TestB": "TestRenamed"}, seen.Aliases)
}

func TestRunCmd_NoBlacklist(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, _ := newTestRoot(t, newRunCmd())

	t.Setenv("TESTRUNNER_RUN_BLACKLIST", "TestFlaky")
	settings.AddToBlacklist("TestStale")

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Return(passingResult("TestFlaky"), nil).
		Once()

	cmd.SetArgs([]string{"run", "--no-blacklist", "./pkg"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, settings.Blacklist())
}

func TestRunCmd_BlacklistReplacedPerRun(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)

	t.Setenv("TESTRUNNER_RUN_BLACKLIST", "TestFlaky")
	settings.AddToBlacklist("TestStale")

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Return(passingResult("TestA"), nil).
		Twice()

	for range 2 {
		cmd, _ := newTestRoot(t, newRunCmd())
		cmd.SetArgs([]string{"run", "./pkg"})
		require.NoError(t, cmd.Execute())

		assert.Equal(t, []string{"TestFlaky"}, settings.Blacklist())
	}
}

func TestRunCmd_VerboseMirrorsEngineOutput(t *testing.T) {
	mockOrchestrator := withOrchestrator(t)
	cmd, _ := newTestRoot(t, newRunCmd())

	var seen domain.RunConfig

	mockOrchestrator.EXPECT().
		Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ m.Options) { seen = settings.Snapshot() }).
		Return(passingResult(), nil).
		Once()

	cmd.SetArgs([]string{"run", "-v", "./pkg"})
	require.NoError(t, cmd.Execute())

	assert.True(t, seen.Verbose)
	assert.Equal(t, cmd.ErrOrStderr(), seen.Output)
}

func TestRunCmd_InvalidSettings(t *testing.T) {
	withOrchestrator(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown naming", []string{"run", "--naming", "flat", "./pkg"}},
		{"negative timeout", []string{"run", "--timeout", "-1", "./pkg"}},
		{"missing env file", []string{"run", "--env-file", "/nonexistent/test.env", "./pkg"}},
		{"alias without target", []string{"run", "--alias", "TestA", "./pkg"}},
		{"alias without name", []string{"run", "--alias", "=TestB", "./pkg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestRoot(t, newRunCmd())
			cmd.SetArgs(tt.args)

			require.Error(t, cmd.Execute())
		})
	}
}
