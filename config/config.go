package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL    = "https://api.geckoterminal.com/api/v2"
	defaultAPIVersion = "20230302"
)

// Config holds the client settings, usually loaded from a YAML file
type Config struct {
	// BaseURL overrides the public API host, mostly for tests and proxies
	BaseURL string `yaml:"base_url"`
	// APIVersion is sent in the Accept header as application/json;version=<APIVersion>
	APIVersion string `yaml:"api_version"`
	UserAgent  string `yaml:"user_agent"`

	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`

	OHLCV OHLCVDefaults `yaml:"ohlcv"`
}

// GetDefaultConfig returns the configuration used when no file is given
func GetDefaultConfig() *Config {
	return &Config{
		BaseURL:           defaultBaseURL,
		APIVersion:        defaultAPIVersion,
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
		OHLCV:             GetDefaultOHLCVConfig(),
	}
}

// LoadConfig reads a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if config.APIVersion == "" {
		log.Printf("Warning: empty api_version in %s, using %s", path, defaultAPIVersion)
		config.APIVersion = defaultAPIVersion
	}
	config.OHLCV.applyDefaults()

	return config, nil
}
