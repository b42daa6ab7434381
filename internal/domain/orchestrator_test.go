package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "gooze.dev/pkg/testrunner/internal/adapter/mocks"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
)

type fixture struct {
	fs        *adaptermocks.MockSourceFSAdapter
	discovery *adaptermocks.MockGoFileAdapter
	goTest    *adaptermocks.MockTestRunnerAdapter
	binary    *adaptermocks.MockTestRunnerAdapter
	coverage  *adaptermocks.MockCoverageAdapter
	settings  *domain.Settings
	orch      domain.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		discovery: adaptermocks.NewMockGoFileAdapter(t),
		goTest:    adaptermocks.NewMockTestRunnerAdapter(t),
		binary:    adaptermocks.NewMockTestRunnerAdapter(t),
		coverage:  adaptermocks.NewMockCoverageAdapter(t),
		settings:  domain.NewSettings(),
	}

	f.orch = domain.NewOrchestrator(f.fs, f.discovery, f.goTest, f.binary, f.coverage, f.settings)

	return f
}

var failingPkg = m.Package{
	Name:       "./failing",
	ImportPath: fixturePkg,
	Pattern:    "./failing",
	Dir:        "/project/failing",
}

func testCase(name string) m.TestCase {
	return m.TestCase{Package: failingPkg, Name: name, File: "/project/failing/failing_test.go"}
}

func (f *fixture) discover(tests ...m.TestCase) {
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./failing").Return(failingPkg, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, failingPkg, mock.Anything).Return(tests, nil)
}

// emit returns an engine that reports the given events for every requested
// test it knows about, in order.
func emit(events ...m.Event) func(context.Context, m.ExecutionRequest, chan<- m.Event) error {
	return func(ctx context.Context, req m.ExecutionRequest, out chan<- m.Event) error {
		for _, event := range events {
			if !contains(req.Run, domain.DeclaringName(event.Test)) {
				continue
			}

			select {
			case out <- event:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

func suiteEvents() []m.Event {
	return []m.Event{
		started("TestPassing"), passed("TestPassing"),
		started("TestFailing"), output("TestFailing", "    failing_test.go:12: expected true\n"), failed("TestFailing"),
		started("TestAssumption"), skipped("TestAssumption"),
	}
}

func suiteCases() []m.TestCase {
	ignoredCase := testCase("TestIgnored")
	ignoredCase.StaticallySkipped = true

	return []m.TestCase{testCase("TestPassing"), testCase("TestFailing"), testCase("TestAssumption"), ignoredCase}
}

func TestOrchestrator_RunTests(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t)
	f.discover(suiteCases()...)

	var captured m.ExecutionRequest

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { captured = req }).
		RunAndReturn(emit(suiteEvents()...)).Once()

	// Act
	result, err := f.orch.RunTests(ctx, "/project", "./failing")

	// Assert
	require.NoError(t, err)
	require.NoError(t, result.Validate())
	assert.Equal(t, []string{"TestPassing", "TestFailing", "TestAssumption"}, result.RunningTests)
	assert.Equal(t, []string{"TestPassing"}, result.PassingTests)
	assert.Equal(t, []string{"TestFailing"}, result.FailingNames())
	assert.Equal(t, []string{"TestAssumption"}, result.AssumptionFailingTests)
	assert.Equal(t, []string{"TestIgnored"}, result.IgnoredTests)

	assert.Equal(t, []string{"TestPassing", "TestFailing", "TestAssumption"}, captured.Run)
	assert.Equal(t, []m.Package{failingPkg}, captured.Packages)
	assert.Equal(t, m.Path("/project"), captured.ProjectDir)
	assert.False(t, captured.Measuring())
}

func TestOrchestrator_RunTestsWithoutClasses(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.RunTests(context.Background(), "/project")

	require.ErrorIs(t, err, m.ErrResolution)
}

func TestOrchestrator_RunTestMethods(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(emit(suiteEvents()...)).Once()

	result, err := f.orch.RunTestMethods(context.Background(), "/project", "./failing", "TestFailing", "TestIgnored")

	require.NoError(t, err)
	assert.Equal(t, []string{"TestFailing"}, result.RunningTests)
	assert.Equal(t, []string{"TestIgnored"}, result.IgnoredTests)
}

func TestOrchestrator_UnknownMethodIsResolutionError(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	_, err := f.orch.RunTestMethods(context.Background(), "/project", "./failing", "TestMissing")

	require.ErrorIs(t, err, m.ErrResolution)
	f.goTest.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_SubtestMethodIsResolutionError(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	_, err := f.orch.RunTestMethods(context.Background(), "/project", "./failing", "TestPassing/case")

	require.ErrorIs(t, err, m.ErrResolution)
}

func TestOrchestrator_UnresolvedPackage(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./missing").
		Return(m.Package{}, m.ResolutionErrorf("package %q not found", "./missing"))

	_, err := f.orch.RunTests(context.Background(), "/project", "./missing")

	require.ErrorIs(t, err, m.ErrResolution)
}

func TestOrchestrator_BlacklistRemovesTests(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.settings.AddToBlacklist("TestFailing", "TestNotInSuite")

	var captured m.ExecutionRequest

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { captured = req }).
		RunAndReturn(emit(suiteEvents()...)).Once()

	// Act
	result, err := f.orch.RunTests(context.Background(), "/project", "./failing")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"TestPassing", "TestAssumption"}, result.RunningTests)
	assert.Empty(t, result.FailingTests)
	assert.NotContains(t, captured.Run, "TestFailing")
	assert.Contains(t, captured.Skip, "TestFailing")
	assert.Equal(t, []string{"TestFailing", "TestNotInSuite"}, f.settings.Blacklist())
}

func TestOrchestrator_BlacklistWinsOverExplicitMethods(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.settings.AddToBlacklist("TestFailing")

	result, err := f.orch.RunTestMethods(context.Background(), "/project", "./failing", "TestFailing")

	require.NoError(t, err)
	assert.Empty(t, result.RunningTests)
	assert.Empty(t, result.IgnoredTests)
	f.goTest.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_EngineFailureIsExecutionError(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	cause := errors.New("exit status 2")
	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Return(m.NewExecutionError(cause, "build failed")).Once()

	result, err := f.orch.RunTests(context.Background(), "/project", "./failing")

	require.ErrorIs(t, err, m.ErrExecution)
	require.ErrorIs(t, err, cause)
	assert.Nil(t, result)
}

func TestOrchestrator_Timeout(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.settings.Update(func(config *domain.RunConfig) {
		config.Timeout = 20 * time.Millisecond
	})

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.ExecutionRequest, events chan<- m.Event) error {
			events <- started("TestPassing")
			events <- passed("TestPassing")
			<-ctx.Done()

			return ctx.Err()
		}).Once()

	// Act
	result, err := f.orch.RunTests(context.Background(), "/project", "./failing")

	// Assert
	require.ErrorIs(t, err, m.ErrTimeout)
	assert.Nil(t, result)
}

func TestOrchestrator_PersistenceDisabledResetsAfterRun(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.settings.AddToBlacklist("TestAssumption")
	f.settings.Update(func(config *domain.RunConfig) {
		config.Persistence = false
		config.Verbose = true
		config.ExtraFlags = []string{"-race"}
	})

	var captured m.ExecutionRequest

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { captured = req }).
		RunAndReturn(emit(suiteEvents()...)).Once()

	_, err := f.orch.RunTests(context.Background(), "/project", "./failing")
	require.NoError(t, err)

	assert.True(t, captured.Verbose)
	assert.Equal(t, []string{"-race"}, captured.ExtraFlags)

	config := f.settings.Snapshot()
	assert.False(t, config.Verbose)
	assert.Empty(t, config.ExtraFlags)
	assert.True(t, config.Persistence)
	assert.Equal(t, []string{"TestAssumption"}, f.settings.Blacklist())
}

func TestOrchestrator_PersistenceDisabledResetsAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./missing").
		Return(m.Package{}, m.ResolutionErrorf("missing"))
	f.settings.Update(func(config *domain.RunConfig) {
		config.Persistence = false
		config.Timeout = time.Second
	})

	_, err := f.orch.RunTests(context.Background(), "/project", "./missing")
	require.Error(t, err)

	assert.Equal(t, domain.DefaultTimeout, f.settings.Snapshot().Timeout)
}

func TestOrchestrator_RunOptions(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.discover(suiteCases()...)

	f.binary.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(emit(suiteEvents()...)).Once()

	opts := m.Options{
		Binaries:  "/project",
		Classes:   []string{"./failing"},
		Blacklist: []string{"TestAssumption"},
		Compiled:  true,
	}

	// Act
	result, err := f.orch.Run(context.Background(), opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"TestPassing", "TestFailing"}, result.RunningTests)
	assert.Empty(t, f.settings.Blacklist())
	assert.False(t, f.settings.Snapshot().Compiled)
	f.goTest.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

var otherPkg = m.Package{Name: "./example", ImportPath: "example.com/fixture/example", Pattern: "./example", Dir: "/project/example"}

func TestOrchestrator_MergesPackages(t *testing.T) {
	f := newFixture(t)

	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./failing").Return(failingPkg, nil)
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./example").Return(otherPkg, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, failingPkg, mock.Anything).Return([]m.TestCase{testCase("TestPassing")}, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, otherPkg, mock.Anything).Return([]m.TestCase{{Package: otherPkg, Name: "TestExample"}}, nil)

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(emit(
		started("TestPassing"), passed("TestPassing"),
		m.Event{Kind: m.EventStarted, Package: otherPkg.ImportPath, Test: "TestExample"},
		m.Event{Kind: m.EventPassed, Package: otherPkg.ImportPath, Test: "TestExample"},
	)).Once()

	result, err := f.orch.RunTests(context.Background(), "/project", "./failing", "./example")

	require.NoError(t, err)
	assert.Equal(t, []string{"TestPassing", "TestExample"}, result.PassingTests)
}

func TestOrchestrator_RunCoverage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t)
	f.discover(suiteCases()...)

	tmpDir := m.Path(t.TempDir())
	f.fs.EXPECT().CreateTempDir(mock.Anything, mock.Anything).Return(tmpDir, nil).Once()
	f.fs.EXPECT().RemoveAll(mock.Anything, tmpDir).Return(nil).Once()

	var captured m.ExecutionRequest

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { captured = req }).
		RunAndReturn(emit(suiteEvents()...)).Once()
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything).
		Return(m.Coverage{InstructionsCovered: 7, InstructionsTotal: 10}, nil).Once()

	// Act
	coverage, err := f.orch.RunCoverage(ctx, "/project", "./source, ./failing", "./failing")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, m.Coverage{InstructionsCovered: 7, InstructionsTotal: 10}, coverage)
	assert.True(t, captured.Measuring())
	assert.Equal(t, []string{"./source", "./failing"}, captured.CoverPackages)
}

func TestOrchestrator_RunCoveragePerTestMethods(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.discover(suiteCases()...)

	tmpDir := m.Path(t.TempDir())
	f.fs.EXPECT().CreateTempDir(mock.Anything, mock.Anything).Return(tmpDir, nil).Once()
	f.fs.EXPECT().RemoveAll(mock.Anything, tmpDir).Return(nil).Once()

	var runs [][]string

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { runs = append(runs, req.Run) }).
		RunAndReturn(emit(suiteEvents()...)).Times(2)

	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything).
		Return(m.Coverage{InstructionsCovered: 3, InstructionsTotal: 10}, nil).Once()
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything).
		Return(m.Coverage{InstructionsCovered: 5, InstructionsTotal: 10}, nil).Once()
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything, mock.Anything).
		Return(m.Coverage{InstructionsCovered: 8, InstructionsTotal: 12}, nil).Once()

	// Act
	perTest, err := f.orch.RunCoveragePerTestMethods(context.Background(), "/project", "./...", "./failing", "TestPassing", "TestFailing")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"TestPassing"}, {"TestFailing"}}, runs)
	assert.Equal(t, []string{"TestFailing", "TestPassing"}, perTest.Tests())

	passing, err := perTest.CoverageOf("TestPassing")
	require.NoError(t, err)
	assert.Equal(t, 3, passing.InstructionsCovered)

	failing, err := perTest.CoverageOf("TestFailing")
	require.NoError(t, err)
	assert.Equal(t, 5, failing.InstructionsCovered)
	assert.Equal(t, 12, passing.InstructionsTotal)
	assert.Equal(t, passing.InstructionsTotal, failing.InstructionsTotal)

	_, err = perTest.CoverageOf("TestAssumption")
	require.ErrorIs(t, err, m.ErrInvalidLookup)
}

func TestOrchestrator_CoveragePerTestReportsProgress(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	tmpDir := m.Path(t.TempDir())
	f.fs.EXPECT().CreateTempDir(mock.Anything, mock.Anything).Return(tmpDir, nil).Once()
	f.fs.EXPECT().RemoveAll(mock.Anything, tmpDir).Return(nil).Once()
	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(emit(suiteEvents()...)).Times(3)
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything).Return(m.Coverage{InstructionsTotal: 4}, nil).Times(3)
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(m.Coverage{InstructionsTotal: 4}, nil).Once()

	var seen []string

	perTest, err := f.orch.CoveragePerTest(context.Background(), m.Options{Binaries: "/project", Classes: []string{"./failing"}}, "", func(done, total int, test string) {
		assert.Equal(t, 3, total)
		assert.Equal(t, len(seen)+1, done)
		seen = append(seen, test)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, perTest.Len())
	assert.Equal(t, []string{"TestPassing", "TestFailing", "TestAssumption"}, seen)
}

func TestOrchestrator_ListTests(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	tests, err := f.orch.ListTests(context.Background(), m.Options{
		Binaries:  "/project",
		Classes:   []string{"./failing"},
		Blacklist: []string{"TestPassing"},
	})

	require.NoError(t, err)
	require.Len(t, tests, 3)
	assert.Equal(t, "TestFailing", tests[0].Name)
	assert.True(t, tests[2].StaticallySkipped)
}

func TestOrchestrator_DeadlineCoversDiscovery(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.settings.Update(func(config *domain.RunConfig) {
		config.Timeout = 20 * time.Millisecond
	})

	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./failing").Return(failingPkg, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, failingPkg, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.Package, _ []string) ([]m.TestCase, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	// Act
	_, err := f.orch.RunTests(context.Background(), "/project", "./failing")

	// Assert
	require.ErrorIs(t, err, m.ErrTimeout)
	f.goTest.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestrator_BuildTagsReachDiscovery(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{name: "no tags", flags: []string{"-race"}, want: nil},
		{name: "equals", flags: []string{"-tags=integration"}, want: []string{"integration"}},
		{name: "separate value", flags: []string{"-tags", "integration,e2e"}, want: []string{"integration", "e2e"}},
		{name: "double dash", flags: []string{"--tags=a b"}, want: []string{"a", "b"}},
		{name: "last wins", flags: []string{"-tags=a", "-race", "-tags=b"}, want: []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.settings.Update(func(config *domain.RunConfig) {
				config.ExtraFlags = tt.flags
			})

			f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./failing").Return(failingPkg, nil)
			f.discovery.EXPECT().DiscoverTests(mock.Anything, failingPkg, tt.want).
				Return([]m.TestCase{testCase("TestPassing")}, nil).Once()

			tests, err := f.orch.ListTests(context.Background(), m.Options{Binaries: "/project", Classes: []string{"./failing"}})

			require.NoError(t, err)
			assert.Len(t, tests, 1)
		})
	}
}

func TestOrchestrator_CoverageMeasuresSelectedPackagesByDefault(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./failing").Return(failingPkg, nil)
	f.fs.EXPECT().ResolvePackage(mock.Anything, mock.Anything, "./example").Return(otherPkg, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, failingPkg, mock.Anything).Return([]m.TestCase{testCase("TestPassing")}, nil)
	f.discovery.EXPECT().DiscoverTests(mock.Anything, otherPkg, mock.Anything).Return([]m.TestCase{{Package: otherPkg, Name: "TestExample"}}, nil)

	tmpDir := m.Path(t.TempDir())
	f.fs.EXPECT().CreateTempDir(mock.Anything, mock.Anything).Return(tmpDir, nil)
	f.fs.EXPECT().RemoveAll(mock.Anything, tmpDir).Return(nil)
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything).Return(m.Coverage{InstructionsCovered: 1, InstructionsTotal: 10}, nil)
	f.coverage.EXPECT().Measure(mock.Anything, mock.Anything, mock.Anything).Return(m.Coverage{InstructionsCovered: 2, InstructionsTotal: 10}, nil).Once()

	var requests []m.ExecutionRequest

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req m.ExecutionRequest, _ chan<- m.Event) { requests = append(requests, req) }).
		Return(nil)

	opts := m.Options{Binaries: "/project", Classes: []string{"./failing", "./example"}}
	want := []string{failingPkg.ImportPath, otherPkg.ImportPath}

	// Act
	_, err := f.orch.Coverage(context.Background(), opts, "")
	require.NoError(t, err)

	_, err = f.orch.CoveragePerTest(context.Background(), opts, "", nil)
	require.NoError(t, err)

	// Assert
	require.Len(t, requests, 3)

	for _, req := range requests {
		assert.Equal(t, want, req.CoverPackages)
	}

	assert.Len(t, requests[0].Packages, 2)
	assert.Equal(t, []m.Package{failingPkg}, requests[1].Packages)
	assert.Equal(t, []m.Package{otherPkg}, requests[2].Packages)
}

func TestOrchestrator_CoverageOfEmptySelection(t *testing.T) {
	f := newFixture(t)
	f.discover(suiteCases()...)

	coverage, err := f.orch.Coverage(context.Background(), m.Options{
		Binaries:  "/project",
		Classes:   []string{"./failing"},
		Blacklist: []string{"TestPassing", "TestFailing", "TestAssumption", "TestIgnored"},
	}, "./...")

	require.NoError(t, err)
	assert.Equal(t, m.Coverage{}, coverage)
	f.goTest.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	f.fs.AssertNotCalled(t, "CreateTempDir", mock.Anything, mock.Anything)
}

func TestOrchestrator_AliasesMergeReportedNames(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.discover(suiteCases()...)
	f.settings.Update(func(config *domain.RunConfig) {
		config.Aliases = map[string]string{"TestPassing": "TestRenamed", "TestFailing": "TestRenamed"}
	})

	f.goTest.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(emit(suiteEvents()...)).Once()

	// Act
	result, err := f.orch.RunTests(context.Background(), "/project", "./failing")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"TestRenamed", "TestAssumption"}, result.RunningTests)
	assert.Empty(t, result.PassingTests)
	assert.Equal(t, []string{"TestRenamed"}, result.FailingNames())
	assert.Equal(t, []string{"TestIgnored"}, result.IgnoredTests)
}
