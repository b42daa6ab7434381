package adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/joho/godotenv"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// EnvFileAdapter loads extra environment variables for the test engine.
type EnvFileAdapter interface {
	// Load reads KEY=VALUE pairs from the files, later files winning.
	Load(ctx context.Context, paths ...m.Path) ([]string, error)
}

// DotEnvFileAdapter reads dotenv formatted files.
type DotEnvFileAdapter struct{}

// NewDotEnvFileAdapter constructs a DotEnvFileAdapter.
func NewDotEnvFileAdapter() *DotEnvFileAdapter {
	return &DotEnvFileAdapter{}
}

// Load returns the variables as sorted KEY=VALUE entries.
func (a *DotEnvFileAdapter) Load(ctx context.Context, paths ...m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make(map[string]string)

	for _, path := range paths {
		if path == "" {
			continue
		}

		values, err := godotenv.Read(string(path))
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", path, err)
		}

		for key, value := range values {
			merged[key] = value
		}
	}

	env := make([]string, 0, len(merged))
	for key, value := range merged {
		env = append(env, key+"="+value)
	}

	sort.Strings(env)

	return env, nil
}
