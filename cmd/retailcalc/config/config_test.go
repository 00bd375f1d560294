package config

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(flag.NewFlagSet("test", flag.ContinueOnError), nil, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.ServerAddress)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(
		flag.NewFlagSet("test", flag.ContinueOnError),
		[]string{"-a", ":9090", "-c", "shop.yaml", "-l", "debug"},
		env(nil),
	)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ServerAddress)
	assert.Equal(t, "shop.yaml", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvOverridesFlags(t *testing.T) {
	cfg, err := load(
		flag.NewFlagSet("test", flag.ContinueOnError),
		[]string{"-a", ":9090"},
		env(map[string]string{"RUN_ADDRESS": ":7070", "LOG_LEVEL": "warn"}),
	)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.ServerAddress)
	assert.Equal(t, "warn", cfg.LogLevel)
}
