package geckoterminal

import (
	"fmt"
	"strings"
)

// Test data
var (
	networksBody = []byte(`{"data": [
		{"id": "eth", "type": "network", "attributes": {"name": "Ethereum", "coingecko_asset_platform_id": "ethereum"}},
		{"id": "bsc", "type": "network", "attributes": {"name": "BNB Chain", "coingecko_asset_platform_id": "binance-smart-chain"}}
	]}`)

	dexesBody = []byte(`{"data": [
		{"id": "uniswap_v2", "type": "dex", "attributes": {"name": "Uniswap V2"}},
		{"id": "sushiswap", "type": "dex", "attributes": {"name": "SushiSwap"}}
	]}`)

	tokenBody = []byte(`{"data": {
		"id": "eth_0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		"type": "token",
		"attributes": {"name": "Wrapped Ether", "symbol": "WETH", "decimals": 18, "price_usd": "3012.55"}
	}}`)

	ohlcvBody = []byte(`{"data": {
		"id": "bc786a99-7205-4c80-aaa1-b9634d97c926",
		"type": "ohlcv_request_response",
		"attributes": {"ohlcv_list": [
			[1700003600, 2.0, 3.0, 1.0, 2.5, 100.0],
			[1700000000, 1.0, 2.0, 0.5, 1.5, 50.0],
			[1700003600, 9.0, 9.0, 9.0, 9.0, 9.0]
		]}
	}, "meta": {"base": {"symbol": "WETH"}, "quote": {"symbol": "USDC"}}}`)

	tradesBody = []byte(`{"data": [{
		"id": "eth_18000000_0xdead_12_1700000000",
		"type": "trade",
		"attributes": {
			"block_number": 18000000,
			"tx_hash": "0xdead",
			"tx_from_address": "0xbeef",
			"from_token_amount": "1.5",
			"to_token_amount": "4500.2",
			"kind": "sell",
			"volume_in_usd": "4501.11",
			"block_timestamp": "2023-11-14T22:13:20Z"
		}
	}]}`)
)

// poolItem renders one pool item of a JSON:API envelope
func poolItem(id, baseTokenID, quoteTokenID string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"type": "pool",
		"attributes": {
			"name": "BASE / QUOTE",
			"address": "0xAAA",
			"base_token_price_usd": "3012.55",
			"reserve_in_usd": "1500000.25",
			"price_change_percentage": {"h1": "0.12", "h24": "-1.5"},
			"transactions": {"h1": {"buys": 12, "sells": 9}, "h24": {"buys": 301, "sells": 288}},
			"volume_usd": {"h24": "1200000.5"}
		},
		"relationships": {
			"dex": {"data": {"id": "uniswap_v3", "type": "dex"}},
			"base_token": {"data": {"id": %q, "type": "token"}},
			"quote_token": {"data": {"id": %q, "type": "token"}}
		}
	}`, id, baseTokenID, quoteTokenID)
}

// poolsBody wraps pool items into a list envelope
func poolsBody(items ...string) []byte {
	return []byte(`{"data": [` + strings.Join(items, ",") + `]}`)
}

// singlePoolBody wraps one pool item into a single-object envelope
func singlePoolBody(item string) []byte {
	return []byte(`{"data": ` + item + `}`)
}
