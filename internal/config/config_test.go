package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: bundle
prefix: myassets
c_file: true
strict: true
text_extensions: [txt, ".html"]
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "bundle", cfg.Output)
	assert.Equal(t, "myassets", cfg.Prefix)
	assert.True(t, cfg.CFile)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"txt", ".html"}, cfg.TextExtensions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoadMissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o644))

	_, err := Load(path, true)
	require.ErrorContains(t, err, "failed to parse")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	assert.Equal(t, "info", cfg.Logging.Level)

	cfg = &Config{Logging: LoggingConfig{Level: "warn"}}
	ApplyDefaults(cfg)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
	assert.NoError(t, Validate(&Config{Logging: LoggingConfig{Level: "WARN"}}))

	err := Validate(&Config{Logging: LoggingConfig{Level: "loud"}})
	assert.ErrorContains(t, err, "invalid logging level")

	err = Validate(&Config{TextExtensions: []string{"txt", "."}})
	assert.ErrorContains(t, err, "invalid text extension")
}
