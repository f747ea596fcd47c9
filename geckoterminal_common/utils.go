package geckoterminal_common

import (
	"log"

	"github.com/status-im/geckoterminal-client/config"
)

// GetApiBaseUrl returns the API base URL, honouring the config override
func GetApiBaseUrl(cfg *config.Config) string {
	if cfg != nil && cfg.BaseURL != "" && cfg.BaseURL != GECKOTERMINAL_API_URL {
		log.Printf("GeckoTerminal: Using overridden API URL: %s", cfg.BaseURL)
		return cfg.BaseURL
	}
	return GECKOTERMINAL_API_URL
}

// GetClientOptions derives HTTP client options from the config
func GetClientOptions(cfg *config.Config) ClientOptions {
	opts := DefaultClientOptions()
	if cfg == nil {
		return opts
	}
	if cfg.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = cfg.ConnectionTimeout
	}
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}
	return opts
}
