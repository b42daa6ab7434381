package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestDotEnvFileAdapter_Load(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")

	writeTestFile(t, base, "# shared\nDB_HOST=localhost\nFIXTURE_VALUE=base\n")
	writeTestFile(t, local, "FIXTURE_VALUE=\"local value\"\n")

	env, err := NewDotEnvFileAdapter().Load(context.Background(), m.Path(base), "", m.Path(local))
	require.NoError(t, err)

	assert.Equal(t, []string{"DB_HOST=localhost", "FIXTURE_VALUE=local value"}, env)
}

func TestDotEnvFileAdapter_Load_MissingFile(t *testing.T) {
	_, err := NewDotEnvFileAdapter().Load(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope.env")))
	assert.Error(t, err)
}
