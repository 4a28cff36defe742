package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem/aferofs"
	"github.com/atomic-component-engine/ace/internal/pkg/log"
)

func TestLoadDotEnv(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs := aferofs.NewMemoryFs()
	ctx := context.Background()

	// Write envs to file
	osEnvs := Empty()
	osEnvs.Set(`FOO1`, `BAR1`)
	osEnvs.Set(`OS_ONLY`, `123`)
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(".env.local", "FOO1=BAR2\nFOO2=BAR2\n")))
	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(".env", "FOO1=BAZ\nFOO3=BAR3\n")))

	// Load envs
	envs := LoadDotEnv(ctx, logger, osEnvs, fs, []string{"."})

	// Assert
	assert.Equal(t, map[string]string{
		"OS_ONLY": "123",
		"FOO1":    "BAR1",
		"FOO2":    "BAR2",
		"FOO3":    "BAR3",
	}, envs.ToMap())
	assert.Equal(t, "INFO  Loaded env file \".env.local\".\nINFO  Loaded env file \".env\".\n", logger.AllMessages())
}

func TestLoadDotEnv_Invalid(t *testing.T) {
	t.Parallel()
	logger := log.NewDebugLogger()
	fs := aferofs.NewMemoryFs()
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(".env.local", "invalid")))
	envs := LoadDotEnv(ctx, logger, Empty(), fs, []string{"."})

	assert.Empty(t, envs.ToMap())
	assert.Equal(t, "WARN  cannot parse env file \".env.local\": invalid key \"\"\n", logger.AllMessages())
}

func TestLoadEnvFile_InvalidKey(t *testing.T) {
	t.Parallel()
	fs := aferofs.NewMemoryFs()
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, filesystem.NewRawFile(".env", "FOO=bar\n1BAD=baz\n")))
	_, err := LoadEnvFile(ctx, fs, ".env")
	require.Error(t, err)
	assert.Equal(t, `cannot parse env file ".env": invalid key "1BAD"`, err.Error())
}
