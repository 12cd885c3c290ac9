package genconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigHasSaneValues(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.Generation.MaxInfeasibleRetries)
	assert.Equal(t, 10, cfg.Generation.MaxCorrectionPasses)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadWithMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigTypeFromExt(t *testing.T) {
	assert.Equal(t, "yaml", configTypeFromExt("foo.yaml"))
	assert.Equal(t, "yaml", configTypeFromExt("foo.yml"))
	assert.Equal(t, "json", configTypeFromExt("foo.json"))
	assert.Equal(t, "toml", configTypeFromExt("foo.toml"))
	assert.Equal(t, "yaml", configTypeFromExt("foo.conf"))
}
