package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "https://api.geckoterminal.com/api/v2", cfg.BaseURL)
	assert.Equal(t, "20230302", cfg.APIVersion)
	assert.Equal(t, 10*time.Second, cfg.ConnectionTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1000, cfg.OHLCV.Limit)
	assert.Equal(t, "usd", cfg.OHLCV.Currency)
	assert.Equal(t, "base", cfg.OHLCV.Token)
}

// TestLoadConfig verifies that file values are layered on top of the defaults
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "full config",
			configYAML: `
base_url: "http://localhost:9000/api/v2"
api_version: "20240101"
user_agent: "test-agent"
connection_timeout: 2s
request_timeout: 5s
ohlcv:
  limit: 100
  currency: token
  token: quote
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:9000/api/v2", cfg.BaseURL)
				assert.Equal(t, "20240101", cfg.APIVersion)
				assert.Equal(t, "test-agent", cfg.UserAgent)
				assert.Equal(t, 2*time.Second, cfg.ConnectionTimeout)
				assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
				assert.Equal(t, 100, cfg.OHLCV.Limit)
				assert.Equal(t, "token", cfg.OHLCV.Currency)
				assert.Equal(t, "quote", cfg.OHLCV.Token)
			},
		},
		{
			name: "partial config keeps defaults",
			configYAML: `
request_timeout: 1m
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://api.geckoterminal.com/api/v2", cfg.BaseURL)
				assert.Equal(t, "20230302", cfg.APIVersion)
				assert.Equal(t, time.Minute, cfg.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.ConnectionTimeout)
				assert.Equal(t, 1000, cfg.OHLCV.Limit)
			},
		},
		{
			name: "empty ohlcv values fall back to defaults",
			configYAML: `
api_version: ""
ohlcv:
  limit: 0
  currency: ""
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "20230302", cfg.APIVersion)
				assert.Equal(t, 1000, cfg.OHLCV.Limit)
				assert.Equal(t, "usd", cfg.OHLCV.Currency)
				assert.Equal(t, "base", cfg.OHLCV.Token)
			},
		},
		{
			name: "invalid duration",
			configYAML: `
request_timeout: soon
`,
			wantErr: true,
		},
		{
			name: "invalid yaml",
			configYAML: `
ohlcv: [
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.configYAML)

			cfg, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}
