package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/testrunner/internal/adapter"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// eventBuffer bounds the channel between engine and classifier.
const eventBuffer = 64

// Orchestrator selects tests, runs them on an engine under the configured
// deadline and classifies the outcome.
type Orchestrator interface {
	// RunTests runs every test of the named packages and merges the results.
	RunTests(ctx context.Context, project m.Path, classes ...string) (*m.TestResult, error)
	// RunTestMethods runs only the named tests of one package.
	RunTestMethods(ctx context.Context, project m.Path, class string, methods ...string) (*m.TestResult, error)
	// RunCoverage measures the coverage of binaries while running the selection.
	RunCoverage(ctx context.Context, project m.Path, binaries string, class string, methods ...string) (m.Coverage, error)
	// RunCoveragePerTestMethods measures the coverage of each selected test on its own.
	RunCoveragePerTestMethods(ctx context.Context, project m.Path, binaries string, class string, methods ...string) (*m.CoveragePerTestMethod, error)

	// Run, Coverage and CoveragePerTest take the whole configuration surface.
	// Options.Blacklist and Options.Compiled apply to that call only.
	Run(ctx context.Context, opts m.Options) (*m.TestResult, error)
	Coverage(ctx context.Context, opts m.Options, binaries string) (m.Coverage, error)
	CoveragePerTest(ctx context.Context, opts m.Options, binaries string, progress ProgressFunc) (*m.CoveragePerTestMethod, error)

	// ListTests returns the tests the selection would run and those it
	// would report as ignored, without running anything.
	ListTests(ctx context.Context, opts m.Options) ([]m.TestCase, error)
}

type orchestrator struct {
	fsAdapter  adapter.SourceFSAdapter
	discovery  adapter.GoFileAdapter
	goTest     adapter.TestRunnerAdapter
	binary     adapter.TestRunnerAdapter
	correlator *CoverageCorrelator
	settings   *Settings
	supervisor *Supervisor
}

// NewOrchestrator constructs an Orchestrator. goTest is the default engine,
// binary the one used when the configuration asks for compiled binaries.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	discovery adapter.GoFileAdapter,
	goTest adapter.TestRunnerAdapter,
	binary adapter.TestRunnerAdapter,
	coverage adapter.CoverageAdapter,
	settings *Settings,
) Orchestrator {
	return newOrchestrator(fsAdapter, discovery, goTest, binary, coverage, settings, NewSupervisor(DefaultGracePeriod))
}

func newOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	discovery adapter.GoFileAdapter,
	goTest adapter.TestRunnerAdapter,
	binary adapter.TestRunnerAdapter,
	coverage adapter.CoverageAdapter,
	settings *Settings,
	supervisor *Supervisor,
) *orchestrator {
	if settings == nil {
		settings = NewSettings()
	}

	return &orchestrator{
		fsAdapter:  fsAdapter,
		discovery:  discovery,
		goTest:     goTest,
		binary:     binary,
		correlator: NewCoverageCorrelator(fsAdapter, coverage),
		settings:   settings,
		supervisor: supervisor,
	}
}

// invocation is one call after the caller's arguments were normalized.
type invocation struct {
	id        string
	project   m.Path
	classes   []string
	methods   []string
	binaries  []string
	blacklist []string
	compiled  bool
}

// plan is the resolved selection of one invocation.
type plan struct {
	config   RunConfig
	packages []m.Package
	run      []m.TestCase
	ignored  []m.TestCase
	excluded int
	request  m.ExecutionRequest
}

func (o *orchestrator) RunTests(ctx context.Context, project m.Path, classes ...string) (*m.TestResult, error) {
	return o.runTests(ctx, invocation{project: project, classes: classes})
}

func (o *orchestrator) RunTestMethods(ctx context.Context, project m.Path, class string, methods ...string) (*m.TestResult, error) {
	return o.runTests(ctx, invocation{project: project, classes: []string{class}, methods: methods})
}

func (o *orchestrator) RunCoverage(ctx context.Context, project m.Path, binaries string, class string, methods ...string) (m.Coverage, error) {
	return o.runCoverage(ctx, invocation{
		project:  project,
		classes:  []string{class},
		methods:  methods,
		binaries: splitBinaries(binaries),
	})
}

func (o *orchestrator) RunCoveragePerTestMethods(ctx context.Context, project m.Path, binaries string, class string, methods ...string) (*m.CoveragePerTestMethod, error) {
	return o.runCoveragePerTest(ctx, invocation{
		project:  project,
		classes:  []string{class},
		methods:  methods,
		binaries: splitBinaries(binaries),
	}, nil)
}

func (o *orchestrator) Run(ctx context.Context, opts m.Options) (*m.TestResult, error) {
	return o.runTests(ctx, fromOptions(opts, ""))
}

func (o *orchestrator) Coverage(ctx context.Context, opts m.Options, binaries string) (m.Coverage, error) {
	return o.runCoverage(ctx, fromOptions(opts, binaries))
}

func (o *orchestrator) CoveragePerTest(ctx context.Context, opts m.Options, binaries string, progress ProgressFunc) (*m.CoveragePerTestMethod, error) {
	return o.runCoveragePerTest(ctx, fromOptions(opts, binaries), progress)
}

func (o *orchestrator) ListTests(ctx context.Context, opts m.Options) ([]m.TestCase, error) {
	inv := fromOptions(opts, "")
	config := o.snapshot(inv)

	p, err := o.plan(ctx, inv, config)
	if err != nil {
		return nil, err
	}

	return append(p.run, p.ignored...), nil
}

func fromOptions(opts m.Options, binaries string) invocation {
	return invocation{
		project:   m.Path(opts.Binaries),
		classes:   opts.Classes,
		methods:   opts.Methods,
		binaries:  splitBinaries(binaries),
		blacklist: opts.Blacklist,
		compiled:  opts.Compiled,
	}
}

func (o *orchestrator) runTests(ctx context.Context, inv invocation) (*m.TestResult, error) {
	defer o.settings.Settle()

	inv.id = uuid.NewString()
	started := time.Now()
	config := o.snapshot(inv)

	result, err := Supervise(ctx, o.supervisor, config.Timeout, func(ctx context.Context) (*m.TestResult, error) {
		p, err := o.plan(ctx, inv, config)
		if err != nil {
			return nil, err
		}

		return o.execute(ctx, p, p.request)
	})
	if err != nil {
		slog.Error("Test run failed", "runID", inv.id, "error", err)
		return nil, err
	}

	slog.Info("Test run finished",
		"runID", inv.id,
		"running", len(result.RunningTests),
		"failing", len(result.FailingTests),
		"ignored", len(result.IgnoredTests),
		"duration", time.Since(started))

	return result, nil
}

func (o *orchestrator) runCoverage(ctx context.Context, inv invocation) (m.Coverage, error) {
	defer o.settings.Settle()

	inv.id = uuid.NewString()
	config := o.snapshot(inv)

	coverage, err := Supervise(ctx, o.supervisor, config.Timeout, func(ctx context.Context) (m.Coverage, error) {
		p, err := o.plan(ctx, inv, config)
		if err != nil {
			return m.Coverage{}, err
		}

		// Without a test to run no profile is written, so nothing is known
		// about the instrumented statements either.
		if len(p.run) == 0 {
			slog.Info("Nothing to measure", "runID", inv.id)
			return m.Coverage{}, nil
		}

		coverage, result, err := o.correlator.Aggregate(ctx, p.request, func(ctx context.Context, req m.ExecutionRequest) (*m.TestResult, error) {
			return o.execute(ctx, p, req)
		})
		if err != nil {
			return m.Coverage{}, err
		}

		slog.Debug("Coverage run classified", "runID", inv.id, "running", len(result.RunningTests), "failing", len(result.FailingTests))

		return coverage, nil
	})
	if err != nil {
		slog.Error("Coverage run failed", "runID", inv.id, "error", err)
		return m.Coverage{}, err
	}

	slog.Info("Coverage run finished", "runID", inv.id, "coverage", coverage.String())

	return coverage, nil
}

func (o *orchestrator) runCoveragePerTest(ctx context.Context, inv invocation, progress ProgressFunc) (*m.CoveragePerTestMethod, error) {
	defer o.settings.Settle()

	inv.id = uuid.NewString()
	config := o.snapshot(inv)

	perTest, err := Supervise(ctx, o.supervisor, config.Timeout, func(ctx context.Context) (*m.CoveragePerTestMethod, error) {
		p, err := o.plan(ctx, inv, config)
		if err != nil {
			return nil, err
		}

		return o.correlator.PerTest(ctx, p.request, p.run, func(ctx context.Context, req m.ExecutionRequest) (*m.TestResult, error) {
			return o.execute(ctx, plan{config: p.config}, req)
		}, progress)
	})
	if err != nil {
		slog.Error("Per-test coverage run failed", "runID", inv.id, "error", err)
		return nil, err
	}

	slog.Info("Per-test coverage run finished", "runID", inv.id, "tests", perTest.Len())

	return perTest, nil
}

// snapshot copies the settings and applies the per-call overrides.
func (o *orchestrator) snapshot(inv invocation) RunConfig {
	config := o.settings.Snapshot()

	for _, name := range inv.blacklist {
		if name != "" {
			config.Blacklist[name] = struct{}{}
		}
	}

	if inv.compiled {
		config.Compiled = true
	}

	return config
}

// plan resolves packages and tests and builds the engine request.
func (o *orchestrator) plan(ctx context.Context, inv invocation, config RunConfig) (plan, error) {
	p := plan{config: config}

	if len(inv.classes) == 0 {
		return p, m.ResolutionErrorf("no test package given")
	}

	projectDir, err := filepath.Abs(string(inv.project))
	if err != nil {
		return p, m.ResolutionErrorf("project %s: %v", inv.project, err)
	}

	discovered := make([]m.TestCase, 0)
	tags := buildTags(config.ExtraFlags)

	for _, class := range inv.classes {
		pkg, err := o.fsAdapter.ResolvePackage(ctx, m.Path(projectDir), class)
		if err != nil {
			slog.Error("Failed to resolve package", "package", class, "error", err)
			return p, err
		}

		tests, err := o.discovery.DiscoverTests(ctx, pkg, tags)
		if err != nil {
			slog.Error("Failed to discover tests", "package", class, "error", err)
			return p, err
		}

		p.packages = append(p.packages, pkg)
		discovered = append(discovered, tests...)
	}

	selected, err := selectTests(discovered, inv.methods)
	if err != nil {
		return p, err
	}

	for _, tc := range selected {
		switch {
		case config.Blacklisted(tc.Name):
			p.excluded++
		case tc.StaticallySkipped:
			p.ignored = append(p.ignored, tc)
		default:
			p.run = append(p.run, tc)
		}
	}

	slog.Debug("Selected tests",
		"runID", inv.id,
		"packages", len(p.packages),
		"run", len(p.run),
		"ignored", len(p.ignored),
		"blacklisted", p.excluded)

	coverPackages := inv.binaries
	if len(coverPackages) == 0 {
		coverPackages = importPaths(p.packages)
	}

	p.request = m.ExecutionRequest{
		ProjectDir:    m.Path(projectDir),
		Packages:      p.packages,
		Run:           uniqueNames(p.run),
		Skip:          topLevelBlacklist(config),
		ExtraFlags:    config.ExtraFlags,
		Env:           config.Env,
		GoBinary:      config.GoBinary,
		CoverPackages: coverPackages,
		Output:        config.Output,
		Verbose:       config.Verbose,
	}

	return p, nil
}

// selectTests narrows discovered to methods, keeping discovery order. Every
// method must exist in at least one package.
func selectTests(discovered []m.TestCase, methods []string) ([]m.TestCase, error) {
	if len(methods) == 0 {
		return discovered, nil
	}

	wanted := make(map[string]bool, len(methods))

	for _, method := range methods {
		method = strings.TrimSpace(method)
		if method == "" {
			continue
		}

		if strings.Contains(method, "/") {
			return nil, m.ResolutionErrorf("%q names a subtest; select its top-level test instead", method)
		}

		wanted[method] = false
	}

	selected := make([]m.TestCase, 0, len(wanted))

	for _, tc := range discovered {
		if _, ok := wanted[tc.Name]; ok {
			wanted[tc.Name] = true
			selected = append(selected, tc)
		}
	}

	for _, method := range methods {
		method = strings.TrimSpace(method)
		if found, ok := wanted[method]; ok && !found {
			return nil, m.ResolutionErrorf("test %q not found", method)
		}
	}

	return selected, nil
}

// execute runs req on the configured engine and classifies its events. The
// result is only returned after the engine exited and every event was seen.
func (o *orchestrator) execute(ctx context.Context, p plan, req m.ExecutionRequest) (*m.TestResult, error) {
	opts := []ClassifierOption{
		WithNaming(p.config.Naming),
		WithExclusion(p.config.Blacklisted),
	}

	if len(p.config.Aliases) > 0 {
		opts = append(opts, WithNameMapper(aliasMapper(p.config)))
	}

	classifier := NewClassifier(opts...)

	for _, tc := range p.ignored {
		classifier.Observe(m.Event{Kind: m.EventSkippedStatically, Package: tc.Package.ImportPath, Test: tc.Name})
	}

	if len(req.Run) == 0 {
		return classifier.Result(), nil
	}

	engine := o.goTest
	if p.config.Compiled {
		engine = o.binary
	}

	events := make(chan m.Event, eventBuffer)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(events)

		if err := engine.Run(groupCtx, req, events); err != nil {
			return fmt.Errorf("run tests: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		return classifier.Consume(groupCtx, events)
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := classifier.Result()
	if err := result.Validate(); err != nil {
		slog.Error("Classified result is inconsistent", "error", err)
		return nil, m.NewExecutionError(fmt.Errorf("classify events: %w", err), "")
	}

	return result, nil
}

// aliasMapper reports tests under their alias, applying the naming policy
// first so aliases name declaring tests when instances are rolled up.
func aliasMapper(config RunConfig) func(string) string {
	return func(name string) string {
		if config.Naming == NamingDeclaring {
			name = DeclaringName(name)
		}

		if alias, ok := config.Aliases[name]; ok {
			return alias
		}

		return name
	}
}

func uniqueNames(tests []m.TestCase) []string {
	names := make([]string, 0, len(tests))
	for _, tc := range tests {
		if !slices.Contains(names, tc.Name) {
			names = append(names, tc.Name)
		}
	}

	return names
}

// topLevelBlacklist returns the blacklisted names -skip can express.
// Blacklisted subtests still execute and are dropped by the classifier.
func topLevelBlacklist(config RunConfig) []string {
	names := make([]string, 0, len(config.Blacklist))
	for name := range config.Blacklist {
		if !strings.Contains(name, "/") {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// importPaths names packages the way -coverpkg expects them.
func importPaths(packages []m.Package) []string {
	paths := make([]string, 0, len(packages))

	for _, pkg := range packages {
		path := pkg.ImportPath
		if path == "" {
			path = pkg.Pattern
		}

		if path != "" && !slices.Contains(paths, path) {
			paths = append(paths, path)
		}
	}

	return paths
}

// buildTags returns the tags of the last -tags flag, as the go command does.
func buildTags(flags []string) []string {
	var tags []string

	for i := 0; i < len(flags); i++ {
		flag := flags[i]
		if !strings.HasPrefix(flag, "-") {
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(flag, "-"), "=")
		if name != "tags" {
			continue
		}

		if !hasValue {
			if i+1 >= len(flags) {
				break
			}

			i++
			value = flags[i]
		}

		tags = strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		})
	}

	return tags
}

func splitBinaries(binaries string) []string {
	var patterns []string

	for _, pattern := range strings.Split(binaries, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			patterns = append(patterns, pattern)
		}
	}

	return patterns
}
