package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPathDefaults(t *testing.T) {
	cfg, err := loadConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ehttpfeed.yaml")
	const yaml = "listen: 0.0.0.0:9999\nmode: request\nadmin:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := loadConfigPath(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.Listen)
	assert.Equal(t, "request", cfg.Mode)
	assert.False(t, cfg.Admin.Enabled)
	// untouched fields keep their defaults
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigPathMissingFile(t *testing.T) {
	_, err := loadConfigPath("/nonexistent/ehttpfeed.yaml")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	cases := map[string]bool{
		"request":  true,
		"response": true,
		"detect":   true,
		"":         true,
		"bogus":    false,
	}
	for s, ok := range cases {
		_, err := parseMode(s)
		if ok {
			assert.NoError(t, err, s)
		} else {
			assert.Error(t, err, s)
		}
	}
}
