package domain

import (
	"io"
	"maps"
	"slices"
	"sync"
	"time"
)

// DefaultTimeout bounds a run when the caller set nothing else.
const DefaultTimeout = 2 * time.Minute

// Naming selects how subtest instances are reported.
type Naming string

const (
	// NamingInstance keeps the engine's instance names (TestX/case).
	NamingInstance Naming = "instance"
	// NamingDeclaring rolls instances up under the declaring test (TestX).
	NamingDeclaring Naming = "declaring"
)

// RunConfig is one snapshot of the settings governing a run.
type RunConfig struct {
	// Blacklist names tests that never run. Runs never clear it.
	Blacklist map[string]struct{}

	// ExtraFlags are passed to the go command (e.g. -race, -tags=x).
	ExtraFlags []string
	// Env holds extra KEY=VALUE entries for the engine process.
	Env []string

	// Persistence keeps the settings across runs when true. When false,
	// every field but Blacklist returns to its default after a run.
	Persistence bool
	Timeout     time.Duration
	Verbose     bool
	Naming      Naming
	// Aliases reports a test under another name. Tests aliased to the same
	// name are merged, the worst outcome winning.
	Aliases map[string]string
	// Compiled selects the precompiled test binary engine.
	Compiled bool
	GoBinary string
	// Output mirrors the raw engine output when non-nil.
	Output io.Writer
}

// DefaultRunConfig returns the process start defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Blacklist:   map[string]struct{}{},
		Persistence: true,
		Timeout:     DefaultTimeout,
		Naming:      NamingInstance,
		GoBinary:    "go",
	}
}

// Blacklisted reports whether name is on the blacklist.
func (c RunConfig) Blacklisted(name string) bool {
	_, ok := c.Blacklist[name]
	return ok
}

// clone deep-copies the reference fields so snapshots never alias.
func (c RunConfig) clone() RunConfig {
	c.Blacklist = maps.Clone(c.Blacklist)
	if c.Blacklist == nil {
		c.Blacklist = map[string]struct{}{}
	}

	c.Aliases = maps.Clone(c.Aliases)
	c.ExtraFlags = slices.Clone(c.ExtraFlags)
	c.Env = slices.Clone(c.Env)

	return c
}

// Settings is the holder of the run configuration shared by successive
// runs. It is created once and injected where needed.
type Settings struct {
	mu     sync.Mutex
	config RunConfig
}

// NewSettings returns a holder initialized to DefaultRunConfig.
func NewSettings() *Settings {
	return &Settings{config: DefaultRunConfig()}
}

// Snapshot returns a copy of the current configuration.
func (s *Settings) Snapshot() RunConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.config.clone()
}

// Update changes the configuration under the lock.
func (s *Settings) Update(fn func(config *RunConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.config)

	if s.config.Blacklist == nil {
		s.config.Blacklist = map[string]struct{}{}
	}
}

// AddToBlacklist adds names to the blacklist.
func (s *Settings) AddToBlacklist(names ...string) {
	s.Update(func(config *RunConfig) {
		for _, name := range names {
			if name != "" {
				config.Blacklist[name] = struct{}{}
			}
		}
	})
}

// ClearBlacklist empties the blacklist.
func (s *Settings) ClearBlacklist() {
	s.Update(func(config *RunConfig) {
		config.Blacklist = map[string]struct{}{}
	})
}

// Blacklist returns the blacklisted names sorted.
func (s *Settings) Blacklist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.config.Blacklist))
}

// Reset restores every field, including the blacklist, to defaults.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = DefaultRunConfig()
}

// Settle is called after every run. With persistence disabled it resets all
// fields except the blacklist.
func (s *Settings) Settle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Persistence {
		return
	}

	blacklist := s.config.Blacklist
	s.config = DefaultRunConfig()
	s.config.Blacklist = blacklist
}
