package projection

// NetworkSpec flattens items of the networks endpoint
var NetworkSpec = FieldSpec{
	F("id", Literal("id")),
	F("type", Literal("type")),
	F("name", Path("attributes.name")),
	F("coingecko_asset_platform_id", Path("attributes.coingecko_asset_platform_id")),
}

// DexSpec flattens items of the dexes endpoint
var DexSpec = FieldSpec{
	F("id", Literal("id")),
	F("type", Literal("type")),
	F("name", Path("attributes.name")),
}

// PoolSpec flattens items of every pool endpoint
var PoolSpec = FieldSpec{
	F("id", Literal("id")),
	F("type", Literal("type")),
	F("name", Path("attributes.name")),
	F("base_token_price_usd", Path("attributes.base_token_price_usd")),
	F("base_token_price_native_currency", Path("attributes.base_token_price_native_currency")),
	F("quote_token_price_usd", Path("attributes.quote_token_price_usd")),
	F("quote_token_price_native_currency", Path("attributes.quote_token_price_native_currency")),
	F("address", Path("attributes.address")),
	F("reserve_in_usd", Path("attributes.reserve_in_usd")),
	F("pool_created_at", Path("attributes.pool_created_at")),
	F("fdv_usd", Path("attributes.fdv_usd")),
	F("market_cap_usd", Path("attributes.market_cap_usd")),
	F("price_change_percentage_h1", Path("attributes.price_change_percentage.h1")),
	F("price_change_percentage_h24", Path("attributes.price_change_percentage.h24")),
	F("transactions_h1_buys", Path("attributes.transactions.h1.buys")),
	F("transactions_h1_sells", Path("attributes.transactions.h1.sells")),
	F("transactions_h24_buys", Path("attributes.transactions.h24.buys")),
	F("transactions_h24_sells", Path("attributes.transactions.h24.sells")),
	F("volume_usd_h24", Path("attributes.volume_usd.h24")),
	F("dex_id", Path("relationships.dex.data.id")),
	F("base_token_id", Path("relationships.base_token.data.id")),
	F("quote_token_id", Path("relationships.quote_token.data.id")),
}

// TradeSpec flattens items of the trades endpoint
var TradeSpec = FieldSpec{
	F("id", Literal("id")),
	F("type", Literal("type")),
	F("block_number", Path("attributes.block_number")),
	F("block_timestamp", Path("attributes.block_timestamp")),
	F("tx_hash", Path("attributes.tx_hash")),
	F("tx_from_address", Path("attributes.tx_from_address")),
	F("from_token_amount", Path("attributes.from_token_amount")),
	F("to_token_amount", Path("attributes.to_token_amount")),
	F("price_from_in_currency_token", Path("attributes.price_from_in_currency_token")),
	F("price_to_in_currency_token", Path("attributes.price_to_in_currency_token")),
	F("price_from_in_usd", Path("attributes.price_from_in_usd")),
	F("price_to_in_usd", Path("attributes.price_to_in_usd")),
	F("kind", Path("attributes.kind")),
	F("volume_in_usd", Path("attributes.volume_in_usd")),
	F("from_token_address", Path("attributes.from_token_address")),
	F("to_token_address", Path("attributes.to_token_address")),
}
