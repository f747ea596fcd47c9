package geckoterminal

import (
	"strconv"
)

// OHLCVParams holds the options of an OHLCV request.
// Zero values are replaced with the configured defaults.
type OHLCVParams struct {
	// Timeframe is one of 1m, 5m, 15m, 1h, 4h, 12h, 1d
	Timeframe string
	// BeforeTimestamp returns candles before this unix timestamp, when set
	BeforeTimestamp int64
	// Currency is "usd" or "token"
	Currency string
	// Token is "base", "quote" or a token address
	Token string
	// Limit is the maximum number of candles
	Limit int
}

// TradesParams holds the options of a trades request
type TradesParams struct {
	// TradeVolumeInUSDGreaterThan filters out smaller trades, when set
	TradeVolumeInUSDGreaterThan float64
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
