package postprocess

import (
	"strings"

	"github.com/status-im/geckoterminal-client/projection"
)

// NetworkIDColumn is the column derived from the pool id prefix
const NetworkIDColumn = "network_id"

// compositeSeparator joins the network id and the local id
const compositeSeparator = "_"

// SplitCompositeID splits "eth_0xabc" into ("eth", "0xabc") on the first underscore
func SplitCompositeID(id string) (networkID, localID string, ok bool) {
	return strings.Cut(id, compositeSeparator)
}

// ProcessPoolsList derives network_id from each pool id and strips the network
// prefix from base_token_id and quote_token_id. The id column is kept as is.
// The input table is not modified; on error no table is returned.
func ProcessPoolsList(table *projection.Table) (*projection.Table, error) {
	columns := append([]string(nil), table.Columns...)
	if !table.HasColumn(NetworkIDColumn) {
		columns = append(columns, NetworkIDColumn)
	}

	result := projection.NewTable(columns)
	result.Records = make([]projection.Record, 0, table.Len())

	for i, record := range table.Records {
		networkID, _, err := splitColumn(record, "id", i)
		if err != nil {
			return nil, err
		}
		_, baseTokenID, err := splitColumn(record, "base_token_id", i)
		if err != nil {
			return nil, err
		}
		_, quoteTokenID, err := splitColumn(record, "quote_token_id", i)
		if err != nil {
			return nil, err
		}

		row := make(projection.Record, len(columns))
		for k, v := range record {
			row[k] = v
		}
		row["base_token_id"] = baseTokenID
		row["quote_token_id"] = quoteTokenID
		row[NetworkIDColumn] = networkID

		result.Records = append(result.Records, row)
	}

	return result, nil
}

func splitColumn(record projection.Record, column string, row int) (string, string, error) {
	value, isString := record[column].(string)
	if !isString {
		return "", "", &MalformedIdentifierError{Column: column, Value: record[column], Row: row}
	}
	networkID, localID, ok := SplitCompositeID(value)
	if !ok {
		return "", "", &MalformedIdentifierError{Column: column, Value: value, Row: row}
	}
	return networkID, localID, nil
}
