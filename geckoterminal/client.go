package geckoterminal

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/status-im/geckoterminal-client/config"
	cg "github.com/status-im/geckoterminal-client/geckoterminal_common"
	"github.com/status-im/geckoterminal-client/metrics"
	"github.com/status-im/geckoterminal-client/postprocess"
	"github.com/status-im/geckoterminal-client/projection"
)

// ServiceName labels the client in logs and metrics
const ServiceName = "geckoterminal"

// Client exposes the GeckoTerminal endpoints as flat tables.
// It is safe for concurrent use; call Close when done.
type Client struct {
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewClient creates a client backed by HTTP. A nil config uses the defaults.
func NewClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	metricsWriter := metrics.NewMetricsWriter(ServiceName)
	return &Client{
		config:        cfg,
		apiClient:     NewGeckoTerminalAPIClient(cfg, metricsWriter),
		metricsWriter: metricsWriter,
	}
}

// NewClientWithAPI creates a client over a custom APIClient
func NewClientWithAPI(cfg *config.Config, apiClient APIClient) *Client {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	return &Client{
		config:        cfg,
		apiClient:     apiClient,
		metricsWriter: metrics.NewMetricsWriter(ServiceName),
	}
}

// Close releases the underlying connections
func (c *Client) Close() {
	c.apiClient.Close()
}

// Healthy reports whether at least one request succeeded
func (c *Client) Healthy() bool {
	return c.apiClient.Healthy()
}

// GetNetworks lists the supported networks
func (c *Client) GetNetworks(ctx context.Context) (*projection.Table, error) {
	return c.fetchTable(ctx, cg.OpNetworks, projection.NetworkSpec, nil)
}

// GetDexesByNetwork lists the dexes of a network
func (c *Client) GetDexesByNetwork(ctx context.Context, networkID string) (*projection.Table, error) {
	return c.fetchTable(ctx, cg.OpDexesByNetwork, projection.DexSpec, nil, networkID)
}

// GetTopPoolsByNetwork lists the top pools of a network
func (c *Client) GetTopPoolsByNetwork(ctx context.Context, networkID string) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpTopPoolsByNetwork, networkID)
}

// GetTopPoolsByNetworkDex lists the top pools of a dex on a network
func (c *Client) GetTopPoolsByNetworkDex(ctx context.Context, networkID, dexID string) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpTopPoolsByNetworkDex, networkID, dexID)
}

// GetTopPoolsByNetworkToken lists the top pools containing a token
func (c *Client) GetTopPoolsByNetworkToken(ctx context.Context, networkID, tokenID string) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpTopPoolsByNetworkToken, networkID, tokenID)
}

// GetNewPoolsByNetwork lists the latest pools of a network
func (c *Client) GetNewPoolsByNetwork(ctx context.Context, networkID string) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpNewPoolsByNetwork, networkID)
}

// GetNewPoolsAllNetworks lists the latest pools across all networks
func (c *Client) GetNewPoolsAllNetworks(ctx context.Context) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpNewPoolsAllNetworks)
}

// GetTrendingPools lists trending pools across all networks
func (c *Client) GetTrendingPools(ctx context.Context) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpTrendingPools)
}

// GetTrendingPoolsByNetwork lists trending pools of a network
func (c *Client) GetTrendingPoolsByNetwork(ctx context.Context, networkID string) (*projection.Table, error) {
	return c.fetchPools(ctx, cg.OpTrendingPoolsByNetwork, networkID)
}

// GetPoolByNetworkAddress returns one pool as a single-record table.
// Identifiers keep their network prefix.
func (c *Client) GetPoolByNetworkAddress(ctx context.Context, networkID, poolAddress string) (*projection.Table, error) {
	return c.fetchTable(ctx, cg.OpPoolByNetworkAddress, projection.PoolSpec, nil, networkID, poolAddress)
}

// GetMultiplePoolsByNetwork returns several pools of a network in one request.
// Identifiers keep their network prefix.
func (c *Client) GetMultiplePoolsByNetwork(ctx context.Context, networkID string, poolAddresses []string) (*projection.Table, error) {
	return c.fetchTable(ctx, cg.OpMultiplePoolsByNetwork, projection.PoolSpec, nil, networkID, strings.Join(poolAddresses, ","))
}

// GetTokenOnNetwork returns the token item as decoded JSON, without projection
func (c *Client) GetTokenOnNetwork(ctx context.Context, networkID, tokenID string) (map[string]interface{}, error) {
	envelope, err := c.fetchEnvelope(ctx, cg.OpTokenOnNetwork, nil, networkID, tokenID)
	if err != nil {
		return nil, err
	}
	return envelope.Item()
}

// GetOHLCV returns the candles of a pool, sorted by timestamp without duplicates.
// The timeframe is validated before any request is sent.
func (c *Client) GetOHLCV(ctx context.Context, networkID, poolAddress string, params OHLCVParams) ([]postprocess.OHLCVRow, error) {
	unit, period, err := postprocess.NormalizeTimeframe(params.Timeframe)
	if err != nil {
		return nil, err
	}

	envelope, err := c.fetchEnvelope(ctx, cg.OpOHLCV, c.ohlcvQuery(period, params), networkID, poolAddress, unit)
	if err != nil {
		return nil, err
	}

	rows, err := postprocess.ParseOHLCVList(envelope.Get("data.attributes.ohlcv_list"))
	if err != nil {
		return nil, fmt.Errorf("error parsing OHLCV for %s/%s: %w", networkID, poolAddress, err)
	}

	cleaned := postprocess.CleanOHLCV(rows)
	c.metricsWriter.RecordRecordsReturned(cg.OpOHLCV, len(cleaned))
	return cleaned, nil
}

// GetOHLCVTable is GetOHLCV rendered as a flat table
func (c *Client) GetOHLCVTable(ctx context.Context, networkID, poolAddress string, params OHLCVParams) (*projection.Table, error) {
	rows, err := c.GetOHLCV(ctx, networkID, poolAddress, params)
	if err != nil {
		return nil, err
	}
	return postprocess.OHLCVTable(rows), nil
}

// GetTrades lists the latest trades of a pool
func (c *Client) GetTrades(ctx context.Context, networkID, poolAddress string, params TradesParams) (*projection.Table, error) {
	query := url.Values{}
	if params.TradeVolumeInUSDGreaterThan > 0 {
		query.Set("trade_volume_in_usd_greater_than", formatFloat(params.TradeVolumeInUSDGreaterThan))
	}
	return c.fetchTable(ctx, cg.OpTrades, projection.TradeSpec, query, networkID, poolAddress)
}

func (c *Client) ohlcvQuery(period string, params OHLCVParams) url.Values {
	configured := c.config.OHLCV
	defaults := config.GetDefaultOHLCVConfig()

	query := url.Values{}
	query.Set("aggregate", period)
	query.Set("limit", strconv.Itoa(firstPositive(params.Limit, configured.Limit, defaults.Limit)))
	query.Set("currency", firstNonEmpty(params.Currency, configured.Currency, defaults.Currency))
	query.Set("token", firstNonEmpty(params.Token, configured.Token, defaults.Token))
	if params.BeforeTimestamp > 0 {
		query.Set("before_timestamp", strconv.FormatInt(params.BeforeTimestamp, 10))
	}
	return query
}

// fetchEnvelope resolves the path, performs the request and parses the body
func (c *Client) fetchEnvelope(ctx context.Context, op cg.Operation, query url.Values, args ...string) (*projection.Envelope, error) {
	path, err := cg.ResolvePath(op, args...)
	if err != nil {
		return nil, err
	}

	body, err := c.apiClient.Fetch(ctx, op, path, query)
	if err != nil {
		return nil, err
	}

	envelope, err := projection.ParseEnvelope(body)
	if err != nil {
		log.Printf("GeckoTerminal: Error parsing response for %s: %v", path, err)
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return envelope, nil
}

func (c *Client) fetchTable(ctx context.Context, op cg.Operation, spec projection.FieldSpec, query url.Values, args ...string) (*projection.Table, error) {
	envelope, err := c.fetchEnvelope(ctx, op, query, args...)
	if err != nil {
		return nil, err
	}

	table, err := projection.ProjectEnvelope(envelope, spec)
	if err != nil {
		return nil, fmt.Errorf("error projecting %s: %w", op, err)
	}

	c.metricsWriter.RecordRecordsReturned(op, table.Len())
	return table, nil
}

func (c *Client) fetchPools(ctx context.Context, op cg.Operation, args ...string) (*projection.Table, error) {
	table, err := c.fetchTable(ctx, op, projection.PoolSpec, nil, args...)
	if err != nil {
		return nil, err
	}
	return postprocess.ProcessPoolsList(table)
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
