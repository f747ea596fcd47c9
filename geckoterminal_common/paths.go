package geckoterminal_common

import (
	"fmt"
	"strings"
)

// Operation names a GeckoTerminal endpoint
type Operation string

const (
	OpNetworks               Operation = "networks"
	OpDexesByNetwork         Operation = "dexes_by_network"
	OpTopPoolsByNetwork      Operation = "top_pools_by_network"
	OpTopPoolsByNetworkDex   Operation = "top_pools_by_network_dex"
	OpTopPoolsByNetworkToken Operation = "top_pools_by_network_token"
	OpNewPoolsByNetwork      Operation = "new_pools_by_network"
	OpNewPoolsAllNetworks    Operation = "new_pools_all_networks"
	OpTrendingPools          Operation = "trending_pools"
	OpTrendingPoolsByNetwork Operation = "trending_pools_by_network"
	OpPoolByNetworkAddress   Operation = "pool_by_network_address"
	OpMultiplePoolsByNetwork Operation = "multiple_pools_by_network"
	OpTokenOnNetwork         Operation = "token_on_network"
	OpOHLCV                  Operation = "ohlcv"
	OpTrades                 Operation = "trades"
)

// placeholder marks a positional argument inside a path template
const placeholder = "{}"

var pathTemplates = map[Operation]string{
	OpNetworks:               "networks",
	OpDexesByNetwork:         "networks/{}/dexes",
	OpTopPoolsByNetwork:      "networks/{}/pools",
	OpTopPoolsByNetworkDex:   "networks/{}/dexes/{}/pools",
	OpTopPoolsByNetworkToken: "networks/{}/tokens/{}/pools",
	OpNewPoolsByNetwork:      "networks/{}/new_pools",
	OpNewPoolsAllNetworks:    "networks/new_pools",
	OpTrendingPools:          "networks/trending_pools",
	OpTrendingPoolsByNetwork: "networks/{}/trending_pools",
	OpPoolByNetworkAddress:   "networks/{}/pools/{}",
	OpMultiplePoolsByNetwork: "networks/{}/pools/multi/{}",
	OpTokenOnNetwork:         "networks/{}/tokens/{}",
	OpOHLCV:                  "networks/{}/pools/{}/ohlcv/{}",
	OpTrades:                 "networks/{}/pools/{}/trades",
}

// PathTemplate returns the raw template registered for an operation
func PathTemplate(op Operation) (string, bool) {
	template, ok := pathTemplates[op]
	return template, ok
}

// ResolvePath fills the positional placeholders of an operation's template.
// Every placeholder needs exactly one non-empty argument.
func ResolvePath(op Operation, args ...string) (string, error) {
	template, ok := pathTemplates[op]
	if !ok {
		return "", &ConfigurationError{Operation: op, Reason: "unknown operation"}
	}

	expected := strings.Count(template, placeholder)
	if len(args) != expected {
		return "", &ConfigurationError{
			Operation: op,
			Reason:    fmt.Sprintf("expected %d path arguments, got %d", expected, len(args)),
		}
	}

	var sb strings.Builder
	rest := template
	for i, arg := range args {
		if arg == "" {
			return "", &ConfigurationError{
				Operation: op,
				Reason:    fmt.Sprintf("path argument %d is empty", i+1),
			}
		}
		idx := strings.Index(rest, placeholder)
		sb.WriteString(rest[:idx])
		sb.WriteString(arg)
		rest = rest[idx+len(placeholder):]
	}
	sb.WriteString(rest)

	return sb.String(), nil
}
