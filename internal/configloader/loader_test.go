package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host string `env:"CL_TEST_HOST" env-default:"localhost"`
	Mode string `env:"CL_TEST_MODE" env-default:"replace" validate:"oneof=replace patch"`
}

func TestLoader_EnvDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, New().Load(&cfg))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "replace", cfg.Mode)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("CL_TEST_HOST", "db.internal")
	t.Setenv("CL_TEST_MODE", "patch")

	var cfg testConfig
	require.NoError(t, New().Load(&cfg))
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "patch", cfg.Mode)
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("CL_TEST_MODE", "upsert")

	var cfg testConfig
	err := New().Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoader_MissingFile(t *testing.T) {
	var cfg testConfig
	err := New(WithFile("does-not-exist.yaml")).Load(&cfg)
	assert.Error(t, err)
}

func TestLoader_OptionalFileAbsent(t *testing.T) {
	var cfg testConfig
	require.NoError(t, New(WithOptionalFile("does-not-exist.yaml")).Load(&cfg))
	assert.Equal(t, "localhost", cfg.Host)
}
