package geckoterminal_common

const (
	// Base URL for the public GeckoTerminal API
	GECKOTERMINAL_API_URL = "https://api.geckoterminal.com/api/v2"
	// API version pinned through the Accept header
	GECKOTERMINAL_API_VERSION = "20230302"
	// Default User-Agent sent with every request
	DEFAULT_USER_AGENT = "Mozilla/5.0 GeckoTerminal-Client"
)
