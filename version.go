package typeaccessor

// Network identifies a well-known chain deployment.
type Network string

// Supported networks.
const (
	// Mainnet is the production network.
	Mainnet Network = "mainnet"
	// Testnet is the public test network.
	Testnet Network = "testnet"
	// Devnet is the frequently-reset development network.
	Devnet Network = "devnet"
)

// String returns the network name.
func (n Network) String() string {
	return string(n)
}

// IsValid returns true if this is a supported network.
func (n Network) IsValid() bool {
	switch n {
	case Mainnet, Testnet, Devnet:
		return true
	default:
		return false
	}
}

// networkConfig holds network-specific configuration.
type networkConfig struct {
	// Endpoint is the node REST API base URL.
	Endpoint string

	// ChainID is the numeric chain identifier.
	ChainID uint8
}

// networkConfigs maps networks to their configurations.
var networkConfigs = map[Network]networkConfig{
	Mainnet: {
		Endpoint: "https://fullnode.mainnet.aptoslabs.com/v1",
		ChainID:  1,
	},
	Testnet: {
		Endpoint: "https://fullnode.testnet.aptoslabs.com/v1",
		ChainID:  2,
	},
	Devnet: {
		Endpoint: "https://fullnode.devnet.aptoslabs.com/v1",
		ChainID:  58,
	},
}

// getNetworkConfig returns the configuration for a network.
func getNetworkConfig(n Network) (networkConfig, bool) {
	cfg, ok := networkConfigs[n]
	return cfg, ok
}

// Endpoint returns the default REST endpoint for a network, or "" for an
// unsupported one.
func (n Network) Endpoint() string {
	cfg, ok := getNetworkConfig(n)
	if !ok {
		return ""
	}
	return cfg.Endpoint
}
