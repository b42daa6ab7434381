package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "testrunner", configBaseName)
	assert.Equal(t, "testrunner.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "run.timeout", timeoutKey)
	assert.Equal(t, "run.blacklist", blacklistKey)
	assert.Equal(t, "TESTRUNNER", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestLoadRunSettings_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	loaded, err := loadRunSettings(v)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimeout, loaded.Timeout)
	assert.Equal(t, domain.NamingInstance, loaded.Naming)
	assert.True(t, loaded.Persistence)
	assert.False(t, loaded.Compiled)
	assert.Equal(t, "go", loaded.GoBinary)
	assert.Empty(t, loaded.Blacklist)
	assert.Empty(t, loaded.EnvFiles)
	assert.Empty(t, loaded.Aliases)
}

func TestLoadRunSettings_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(timeoutKey, 0)
	v.Set(namingKey, "Declaring")
	v.Set(blacklistKey, []string{"TestFlaky"})
	v.Set(envFileKey, []string{".env", ".env.local"})
	v.Set(compiledKey, true)
	v.Set(goBinaryKey, "/usr/local/go/bin/go")
	v.Set(aliasesKey, []string{"TestOld=TestNew"})

	loaded, err := loadRunSettings(v)
	require.NoError(t, err)

	assert.Zero(t, loaded.Timeout)
	assert.Equal(t, domain.NamingDeclaring, loaded.Naming)
	assert.Equal(t, []string{"TestFlaky"}, loaded.Blacklist)
	assert.Equal(t, []m.Path{".env", ".env.local"}, loaded.EnvFiles)
	assert.True(t, loaded.Compiled)
	assert.Equal(t, "/usr/local/go/bin/go", loaded.GoBinary)
	assert.Equal(t, map[string]string{"TestOld": "TestNew"}, loaded.Aliases)
}

func TestParseNaming(t *testing.T) {
	naming, err := parseNaming("")
	require.NoError(t, err)
	assert.Equal(t, domain.NamingInstance, naming)

	naming, err = parseNaming(" declaring ")
	require.NoError(t, err)
	assert.Equal(t, domain.NamingDeclaring, naming)

	_, err = parseNaming("flat")
	assert.Error(t, err)
}

func TestParseAliases(t *testing.T) {
	aliases, err := parseAliases(nil)
	require.NoError(t, err)
	assert.Empty(t, aliases)

	aliases, err = parseAliases([]string{"TestA=TestB", " TestC = TestB "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TestA": "TestB", "TestC": "TestB"}, aliases)

	for _, entry := range []string{"TestA", "TestA=", "=TestB", " = "} {
		_, err = parseAliases([]string{entry})
		assert.Error(t, err, entry)
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "run.log")
	configureLogger(logPath, true)

	slog.Debug("Selected tests", "run", 3)

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Selected tests")
	assert.Contains(t, string(contents), "run=3")
}

func TestDefaultTimeoutIsSeconds(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, int64(domain.DefaultTimeout/time.Second), v.GetInt64(timeoutKey))
}
