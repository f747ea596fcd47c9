package projection

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoolsBody = []byte(`{
  "data": [
    {
      "id": "eth_0xAAA",
      "type": "pool",
      "attributes": {
        "name": "WETH / USDC 0.05%",
        "base_token_price_usd": "3012.55",
        "address": "0xAAA",
        "price_change_percentage": {"h1": "0.12", "h24": "-1.5"},
        "transactions": {"h1": {"buys": 12, "sells": 9}, "h24": {"buys": 301, "sells": 288}},
        "volume_usd": {"h24": "1200000.5"}
      },
      "relationships": {
        "dex": {"data": {"id": "uniswap_v3", "type": "dex"}},
        "base_token": {"data": {"id": "eth_0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "type": "token"}},
        "quote_token": {"data": {"id": "eth_0xa0b8", "type": "token"}}
      }
    },
    {
      "id": "bsc_0xBBB",
      "type": "pool",
      "attributes": {
        "name": "WBNB / BUSD",
        "price_change_percentage": "unknown"
      },
      "relationships": {}
    }
  ]
}`)

func TestProject_ColumnsFollowSpecOrder(t *testing.T) {
	table, err := Project(samplePoolsBody, PoolSpec)
	require.NoError(t, err)

	assert.Equal(t, PoolSpec.Columns(), table.Columns)
	require.Equal(t, 2, table.Len())

	// every record carries exactly the declared columns
	for i, record := range table.Records {
		keys := make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		expected := append([]string(nil), table.Columns...)
		sort.Strings(expected)
		assert.Equal(t, expected, keys, "record %d", i)
		assert.Len(t, table.Row(i), len(table.Columns))
	}
}

func TestProject_ResolvesNestedValues(t *testing.T) {
	table, err := Project(samplePoolsBody, PoolSpec)
	require.NoError(t, err)

	first := table.Records[0]
	assert.Equal(t, "eth_0xAAA", first["id"])
	assert.Equal(t, "pool", first["type"])
	assert.Equal(t, "WETH / USDC 0.05%", first["name"])
	assert.Equal(t, "3012.55", first["base_token_price_usd"])
	assert.Equal(t, "0.12", first["price_change_percentage_h1"])
	assert.Equal(t, "-1.5", first["price_change_percentage_h24"])
	assert.Equal(t, float64(12), first["transactions_h1_buys"])
	assert.Equal(t, float64(288), first["transactions_h24_sells"])
	assert.Equal(t, "1200000.5", first["volume_usd_h24"])
	assert.Equal(t, "uniswap_v3", first["dex_id"])
	assert.Equal(t, "eth_0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", first["base_token_id"])
	assert.Equal(t, "eth_0xa0b8", first["quote_token_id"])
}

func TestProject_MissingPathsYieldNil(t *testing.T) {
	table, err := Project(samplePoolsBody, PoolSpec)
	require.NoError(t, err)

	second := table.Records[1]
	assert.Equal(t, "bsc_0xBBB", second["id"])
	assert.Equal(t, "WBNB / BUSD", second["name"])

	// absent attribute
	assert.Nil(t, second["reserve_in_usd"])
	// intermediate is a string, not an object
	assert.Nil(t, second["price_change_percentage_h1"])
	// absent relationship
	assert.Nil(t, second["dex_id"])
	assert.Nil(t, second["base_token_id"])

	// present in the record even though nil
	_, ok := second["quote_token_id"]
	assert.True(t, ok)
}

func TestProject_EmptyData(t *testing.T) {
	table, err := Project([]byte(`{"data": []}`), NetworkSpec)
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.NotNil(t, table.Records)
	assert.Equal(t, []string{"id", "type", "name", "coingecko_asset_platform_id"}, table.Columns)
}

func TestProject_SingleItemIsWrapped(t *testing.T) {
	body := []byte(`{"data": {"id": "eth_0xAAA", "type": "pool", "attributes": {"name": "single"}}}`)

	table, err := Project(body, PoolSpec)
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "single", table.Records[0]["name"])
}

func TestProject_LiteralDoesNotWalkDots(t *testing.T) {
	body := []byte(`{"data": [{"id": "x", "a.b": "dotted", "a": {"b": "nested"}}]}`)
	spec := FieldSpec{
		F("literal", Literal("a.b")),
		F("path", Path("a.b")),
		F("segments", PathOf("a.b")),
	}

	table, err := Project(body, spec)
	require.NoError(t, err)

	assert.Equal(t, "dotted", table.Records[0]["literal"])
	assert.Equal(t, "nested", table.Records[0]["path"])
	assert.Equal(t, "dotted", table.Records[0]["segments"])
}

func TestProject_PathDoesNotIndexArrays(t *testing.T) {
	body := []byte(`{"data": [{"id": "x", "attributes": {"list": ["a", "b"]}}]}`)
	spec := FieldSpec{
		F("first", Path("attributes.list.0")),
		F("list", Path("attributes.list")),
	}

	table, err := Project(body, spec)
	require.NoError(t, err)

	assert.Nil(t, table.Records[0]["first"])
	assert.Equal(t, []interface{}{"a", "b"}, table.Records[0]["list"])
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	original := append([]byte(nil), samplePoolsBody...)

	_, err := Project(samplePoolsBody, PoolSpec)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(original, samplePoolsBody))
}

func TestProject_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"data": [`},
		{name: "top level array", body: `[{"id": "x"}]`},
		{name: "missing data", body: `{"meta": {}}`},
		{name: "null data", body: `{"data": null}`},
		{name: "scalar data", body: `{"data": "x"}`},
		{name: "array of scalars", body: `{"data": [{"id": "x"}, 1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Project([]byte(tt.body), DexSpec)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrMalformedEnvelope), "got %v", err)
		})
	}
}

func TestEnvelope_Item(t *testing.T) {
	envelope, err := ParseEnvelope([]byte(`{"data": {"id": "eth_0xc02a", "type": "token", "attributes": {"symbol": "WETH", "decimals": 18}}}`))
	require.NoError(t, err)

	item, err := envelope.Item()
	require.NoError(t, err)
	assert.Equal(t, "eth_0xc02a", item["id"])
	attributes, ok := item["attributes"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "WETH", attributes["symbol"])
	assert.Equal(t, float64(18), attributes["decimals"])

	listEnvelope, err := ParseEnvelope([]byte(`{"data": []}`))
	require.NoError(t, err)
	_, err = listEnvelope.Item()
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}
