package config

// OHLCVDefaults holds the query defaults for OHLCV requests
type OHLCVDefaults struct {
	// Limit is the maximum number of candles requested
	Limit int `yaml:"limit"`
	// Currency is "usd" or "token"
	Currency string `yaml:"currency"`
	// Token selects which side of the pool the candles are quoted for: "base" or "quote"
	Token string `yaml:"token"`
}

// GetDefaultOHLCVConfig returns default OHLCV query values
func GetDefaultOHLCVConfig() OHLCVDefaults {
	return OHLCVDefaults{
		Limit:    1000,
		Currency: "usd",
		Token:    "base",
	}
}

func (d *OHLCVDefaults) applyDefaults() {
	defaults := GetDefaultOHLCVConfig()
	if d.Limit <= 0 {
		d.Limit = defaults.Limit
	}
	if d.Currency == "" {
		d.Currency = defaults.Currency
	}
	if d.Token == "" {
		d.Token = defaults.Token
	}
}
