package typeaccessor

import (
	"testing"
)

func TestNetwork_String(t *testing.T) {
	tests := []struct {
		network Network
		want    string
	}{
		{Mainnet, "mainnet"},
		{Testnet, "testnet"},
		{Devnet, "devnet"},
	}

	for _, tt := range tests {
		if got := tt.network.String(); got != tt.want {
			t.Errorf("%v.String() = %q; want %q", tt.network, got, tt.want)
		}
	}
}

func TestNetwork_IsValid(t *testing.T) {
	tests := []struct {
		network Network
		want    bool
	}{
		{Mainnet, true},
		{Testnet, true},
		{Devnet, true},
		{"localnet", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.network.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.network, got, tt.want)
		}
	}
}

func TestNetwork_Endpoint(t *testing.T) {
	if got := Mainnet.Endpoint(); got != "https://fullnode.mainnet.aptoslabs.com/v1" {
		t.Errorf("Mainnet.Endpoint() = %q", got)
	}
	if got := Network("localnet").Endpoint(); got != "" {
		t.Errorf("unsupported network Endpoint() = %q; want empty", got)
	}
}

func TestGetNetworkConfig(t *testing.T) {
	cfg, ok := getNetworkConfig(Testnet)
	if !ok {
		t.Fatal("getNetworkConfig(Testnet) returned false")
	}
	if cfg.ChainID != 2 {
		t.Errorf("ChainID = %d; want 2", cfg.ChainID)
	}

	if _, ok := getNetworkConfig("localnet"); ok {
		t.Error("getNetworkConfig(localnet) should return false")
	}
}
