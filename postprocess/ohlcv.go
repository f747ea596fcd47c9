package postprocess

import (
	"fmt"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/status-im/geckoterminal-client/projection"
)

// OHLCVColumns are the columns of an OHLCV table, datetime being derived
var OHLCVColumns = []string{"timestamp", "open", "high", "low", "close", "volume_usd", "datetime"}

// OHLCVRow is one candle; Datetime is set by CleanOHLCV
type OHLCVRow struct {
	Timestamp int64     `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	VolumeUSD float64   `json:"volume_usd"`
	Datetime  time.Time `json:"datetime"`
}

// ParseOHLCVList reads the ohlcv_list array: [[timestamp, open, high, low, close, volume], ...]
func ParseOHLCVList(list gjson.Result) ([]OHLCVRow, error) {
	if !list.Exists() || list.Type == gjson.Null {
		return []OHLCVRow{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("ohlcv_list is not an array")
	}

	entries := list.Array()
	rows := make([]OHLCVRow, 0, len(entries))
	for i, entry := range entries {
		values := entry.Array()
		if !entry.IsArray() || len(values) < 6 {
			return nil, fmt.Errorf("ohlcv_list[%d]: expected 6 values, got %s", i, entry.Raw)
		}
		for j, value := range values[:6] {
			if value.Type != gjson.Number {
				return nil, fmt.Errorf("ohlcv_list[%d][%d]: not a number: %s", i, j, value.Raw)
			}
		}
		rows = append(rows, OHLCVRow{
			Timestamp: values[0].Int(),
			Open:      values[1].Float(),
			High:      values[2].Float(),
			Low:       values[3].Float(),
			Close:     values[4].Float(),
			VolumeUSD: values[5].Float(),
		})
	}
	return rows, nil
}

// CleanOHLCV sorts rows by timestamp, keeps the first row seen for each
// timestamp and sets Datetime in UTC. The input slice is not modified.
func CleanOHLCV(rows []OHLCVRow) []OHLCVRow {
	sorted := append([]OHLCVRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	cleaned := make([]OHLCVRow, 0, len(sorted))
	for i, row := range sorted {
		if i > 0 && row.Timestamp == sorted[i-1].Timestamp {
			continue
		}
		row.Datetime = time.Unix(row.Timestamp, 0).UTC()
		cleaned = append(cleaned, row)
	}
	return cleaned
}

// OHLCVTable renders candles as a flat table
func OHLCVTable(rows []OHLCVRow) *projection.Table {
	table := projection.NewTable(OHLCVColumns)
	table.Records = make([]projection.Record, 0, len(rows))
	for _, row := range rows {
		table.Records = append(table.Records, projection.Record{
			"timestamp":  row.Timestamp,
			"open":       row.Open,
			"high":       row.High,
			"low":        row.Low,
			"close":      row.Close,
			"volume_usd": row.VolumeUSD,
			"datetime":   row.Datetime,
		})
	}
	return table
}
