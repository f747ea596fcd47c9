package postprocess

// OHLCVTimeframes lists the timeframes accepted by the OHLCV endpoint
var OHLCVTimeframes = []string{"1m", "5m", "15m", "1h", "4h", "12h", "1d"}

var timeframeUnits = map[byte]string{
	'm': "minute",
	'h': "hour",
	'd': "day",
}

// NormalizeTimeframe turns "15m" into ("minute", "15"). The period is kept as
// the original digit string since it goes straight into the aggregate parameter.
func NormalizeTimeframe(timeframe string) (unit string, period string, err error) {
	if !isSupportedTimeframe(timeframe) {
		return "", "", &UnsupportedTimeframeError{Timeframe: timeframe}
	}

	last := len(timeframe) - 1
	return timeframeUnits[timeframe[last]], timeframe[:last], nil
}

func isSupportedTimeframe(timeframe string) bool {
	for _, supported := range OHLCVTimeframes {
		if timeframe == supported {
			return true
		}
	}
	return false
}
