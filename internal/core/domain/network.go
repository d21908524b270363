package domain

import (
	"fmt"

	"github.com/stellar/go/network"
)

// NetworkID identifies which ledger network the service talks to.
type NetworkID string

const (
	NetworkMainnet   NetworkID = "mainnet"
	NetworkTestnet   NetworkID = "testnet"
	NetworkFuturenet NetworkID = "futurenet"
)

// futurenetPassphrase is not exported by the network package.
const futurenetPassphrase = "Test SDF Future Network ; October 2022"

// DefaultPassphrase returns the well-known passphrase for id, or "" if unknown.
func (id NetworkID) DefaultPassphrase() string {
	switch id {
	case NetworkMainnet:
		return network.PublicNetworkPassphrase
	case NetworkTestnet:
		return network.TestNetworkPassphrase
	case NetworkFuturenet:
		return futurenetPassphrase
	default:
		return ""
	}
}

// Valid reports whether id is one of the supported networks.
func (id NetworkID) Valid() bool {
	return id.DefaultPassphrase() != ""
}

// NetworkConfig is the process-wide network selection. It is a value type;
// copies handed to components cannot be changed behind their back.
type NetworkConfig struct {
	ID         NetworkID
	HorizonURL string
	Passphrase string
	FaucetURL  string
}

// NewNetworkConfig validates and builds a NetworkConfig. An empty passphrase
// falls back to the well-known passphrase of id.
func NewNetworkConfig(id NetworkID, horizonURL, passphrase, faucetURL string) (NetworkConfig, error) {
	if !id.Valid() {
		return NetworkConfig{}, fmt.Errorf("unknown network id %q", id)
	}
	if horizonURL == "" {
		return NetworkConfig{}, fmt.Errorf("horizon url is required for network %q", id)
	}
	if id == NetworkTestnet && faucetURL == "" {
		return NetworkConfig{}, fmt.Errorf("faucet url is required for network %q", id)
	}
	if passphrase == "" {
		passphrase = id.DefaultPassphrase()
	}
	return NetworkConfig{
		ID:         id,
		HorizonURL: horizonURL,
		Passphrase: passphrase,
		FaucetURL:  faucetURL,
	}, nil
}

// FaucetAvailable reports whether funding requests may be sent.
// Only the test network has a faucet; the faucet URL is ignored elsewhere.
func (c NetworkConfig) FaucetAvailable() bool {
	return c.ID == NetworkTestnet
}
