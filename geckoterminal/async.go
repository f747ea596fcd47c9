package geckoterminal

import (
	"context"

	"github.com/status-im/geckoterminal-client/postprocess"
	"github.com/status-im/geckoterminal-client/projection"
)

// Result carries the outcome of an asynchronous call
type Result[T any] struct {
	Value T
	Err   error
}

// AsyncClient runs Client calls in the background. Each method returns a
// channel that delivers exactly one Result and is then closed.
type AsyncClient struct {
	client *Client
}

// Async returns the non-blocking view of the client
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

func runAsync[T any](ctx context.Context, call func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		value, err := call(ctx)
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// Await waits for an asynchronous result or for ctx to be done
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case result := <-ch:
		return result.Value, result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// GetNetworks is the non-blocking Client.GetNetworks
func (a *AsyncClient) GetNetworks(ctx context.Context) <-chan Result[*projection.Table] {
	return runAsync(ctx, a.client.GetNetworks)
}

// GetDexesByNetwork is the non-blocking Client.GetDexesByNetwork
func (a *AsyncClient) GetDexesByNetwork(ctx context.Context, networkID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetDexesByNetwork(ctx, networkID)
	})
}

// GetTopPoolsByNetwork is the non-blocking Client.GetTopPoolsByNetwork
func (a *AsyncClient) GetTopPoolsByNetwork(ctx context.Context, networkID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetTopPoolsByNetwork(ctx, networkID)
	})
}

// GetTopPoolsByNetworkDex is the non-blocking Client.GetTopPoolsByNetworkDex
func (a *AsyncClient) GetTopPoolsByNetworkDex(ctx context.Context, networkID, dexID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetTopPoolsByNetworkDex(ctx, networkID, dexID)
	})
}

// GetTopPoolsByNetworkToken is the non-blocking Client.GetTopPoolsByNetworkToken
func (a *AsyncClient) GetTopPoolsByNetworkToken(ctx context.Context, networkID, tokenID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetTopPoolsByNetworkToken(ctx, networkID, tokenID)
	})
}

// GetNewPoolsByNetwork is the non-blocking Client.GetNewPoolsByNetwork
func (a *AsyncClient) GetNewPoolsByNetwork(ctx context.Context, networkID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetNewPoolsByNetwork(ctx, networkID)
	})
}

// GetNewPoolsAllNetworks is the non-blocking Client.GetNewPoolsAllNetworks
func (a *AsyncClient) GetNewPoolsAllNetworks(ctx context.Context) <-chan Result[*projection.Table] {
	return runAsync(ctx, a.client.GetNewPoolsAllNetworks)
}

// GetTrendingPools is the non-blocking Client.GetTrendingPools
func (a *AsyncClient) GetTrendingPools(ctx context.Context) <-chan Result[*projection.Table] {
	return runAsync(ctx, a.client.GetTrendingPools)
}

// GetTrendingPoolsByNetwork is the non-blocking Client.GetTrendingPoolsByNetwork
func (a *AsyncClient) GetTrendingPoolsByNetwork(ctx context.Context, networkID string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetTrendingPoolsByNetwork(ctx, networkID)
	})
}

// GetPoolByNetworkAddress is the non-blocking Client.GetPoolByNetworkAddress
func (a *AsyncClient) GetPoolByNetworkAddress(ctx context.Context, networkID, poolAddress string) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetPoolByNetworkAddress(ctx, networkID, poolAddress)
	})
}

// GetMultiplePoolsByNetwork is the non-blocking Client.GetMultiplePoolsByNetwork
func (a *AsyncClient) GetMultiplePoolsByNetwork(ctx context.Context, networkID string, poolAddresses []string) <-chan Result[*projection.Table] {
	addresses := append([]string(nil), poolAddresses...)
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetMultiplePoolsByNetwork(ctx, networkID, addresses)
	})
}

// GetTokenOnNetwork is the non-blocking Client.GetTokenOnNetwork
func (a *AsyncClient) GetTokenOnNetwork(ctx context.Context, networkID, tokenID string) <-chan Result[map[string]interface{}] {
	return runAsync(ctx, func(ctx context.Context) (map[string]interface{}, error) {
		return a.client.GetTokenOnNetwork(ctx, networkID, tokenID)
	})
}

// GetOHLCV is the non-blocking Client.GetOHLCV
func (a *AsyncClient) GetOHLCV(ctx context.Context, networkID, poolAddress string, params OHLCVParams) <-chan Result[[]postprocess.OHLCVRow] {
	return runAsync(ctx, func(ctx context.Context) ([]postprocess.OHLCVRow, error) {
		return a.client.GetOHLCV(ctx, networkID, poolAddress, params)
	})
}

// GetTrades is the non-blocking Client.GetTrades
func (a *AsyncClient) GetTrades(ctx context.Context, networkID, poolAddress string, params TradesParams) <-chan Result[*projection.Table] {
	return runAsync(ctx, func(ctx context.Context) (*projection.Table, error) {
		return a.client.GetTrades(ctx, networkID, poolAddress, params)
	})
}
