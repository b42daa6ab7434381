package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gooze.dev/pkg/testrunner/internal/domain"
	m "gooze.dev/pkg/testrunner/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "testrunner"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName    = "output"
	projectFlagName   = "project"
	testsFlagName     = "tests"
	blacklistFlagName = "blacklist"
	compiledFlagName  = "compiled"
	timeoutFlagName   = "timeout"
	extraFlagsName    = "flags"
	envFileFlagName   = "env-file"
	namingFlagName    = "naming"
	verboseFlagName   = "verbose"
	coverPkgFlagName  = "coverpkg"
	perTestFlagName   = "per-test"
	aliasFlagName     = "alias"
	noBlacklistName   = "no-blacklist"

	projectKey     = "project"
	timeoutKey     = "run.timeout"
	blacklistKey   = "run.blacklist"
	extraFlagsKey  = "run.flags"
	envFileKey     = "run.env_file"
	persistenceKey = "run.persistence"
	namingKey      = "run.naming"
	compiledKey    = "run.compiled"
	goBinaryKey    = "run.go_binary"
	aliasesKey     = "run.aliases"

	defaultRecordPath  = ".testrunner/last-run.yaml"
	defaultProject     = "."
	defaultPersistence = true
	defaultCompiled    = false
	defaultGoBinary    = "go"

	envPrefix = "TESTRUNNER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".testrunner.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(outputFlagName, defaultRecordPath)
	v.SetDefault(projectKey, defaultProject)

	v.SetDefault(timeoutKey, int64(domain.DefaultTimeout.Seconds()))
	v.SetDefault(blacklistKey, []string{})
	v.SetDefault(extraFlagsKey, []string{})
	v.SetDefault(envFileKey, []string{})
	v.SetDefault(persistenceKey, defaultPersistence)
	v.SetDefault(namingKey, string(domain.NamingInstance))
	v.SetDefault(compiledKey, defaultCompiled)
	v.SetDefault(goBinaryKey, defaultGoBinary)
	v.SetDefault(aliasesKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// runSettings is the engine configuration read from viper.
type runSettings struct {
	Timeout     time.Duration
	Blacklist   []string
	ExtraFlags  []string
	EnvFiles    []m.Path
	Persistence bool
	Naming      domain.Naming
	Aliases     map[string]string
	Compiled    bool
	GoBinary    string
	Verbose     bool
}

func loadRunSettings(v *viper.Viper) (runSettings, error) {
	naming, err := parseNaming(v.GetString(namingKey))
	if err != nil {
		return runSettings{}, err
	}

	timeout := v.GetInt64(timeoutKey)
	if timeout < 0 {
		return runSettings{}, fmt.Errorf("invalid %s %d: must not be negative", timeoutKey, timeout)
	}

	aliases, err := parseAliases(v.GetStringSlice(aliasesKey))
	if err != nil {
		return runSettings{}, err
	}

	envFiles := make([]m.Path, 0)
	for _, path := range v.GetStringSlice(envFileKey) {
		envFiles = append(envFiles, m.Path(path))
	}

	return runSettings{
		Timeout:     time.Duration(timeout) * time.Second,
		Blacklist:   v.GetStringSlice(blacklistKey),
		ExtraFlags:  v.GetStringSlice(extraFlagsKey),
		EnvFiles:    envFiles,
		Persistence: v.GetBool(persistenceKey),
		Naming:      naming,
		Aliases:     aliases,
		Compiled:    v.GetBool(compiledKey),
		GoBinary:    v.GetString(goBinaryKey),
		Verbose:     v.GetBool(logVerboseKey),
	}, nil
}

func parseNaming(value string) (domain.Naming, error) {
	switch domain.Naming(strings.ToLower(strings.TrimSpace(value))) {
	case "", domain.NamingInstance:
		return domain.NamingInstance, nil
	case domain.NamingDeclaring:
		return domain.NamingDeclaring, nil
	default:
		return "", fmt.Errorf("invalid naming %q: want %q or %q", value, domain.NamingInstance, domain.NamingDeclaring)
	}
}

// parseAliases reads "TestOld=TestNew" entries. Test names are case
// sensitive, so aliases are a list rather than a viper map.
func parseAliases(entries []string) (map[string]string, error) {
	aliases := make(map[string]string, len(entries))

	for _, entry := range entries {
		from, to, ok := strings.Cut(entry, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)

		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid %s entry %q: want NAME=ALIAS", aliasesKey, entry)
		}

		aliases[from] = to
	}

	return aliases, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
