package domain

import (
	"fmt"
	"testing"

	"github.com/stellar/go/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkConfig_DefaultPassphrase(t *testing.T) {
	tests := []struct {
		id         NetworkID
		passphrase string
	}{
		{NetworkMainnet, network.PublicNetworkPassphrase},
		{NetworkTestnet, network.TestNetworkPassphrase},
		{NetworkFuturenet, futurenetPassphrase},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			cfg, err := NewNetworkConfig(tt.id, "https://horizon.example", "", "https://faucet.example")
			require.NoError(t, err)
			assert.Equal(t, tt.passphrase, cfg.Passphrase)
		})
	}
}

func TestNewNetworkConfig_ExplicitPassphraseWins(t *testing.T) {
	cfg, err := NewNetworkConfig(NetworkMainnet, "https://horizon.example", "Standalone Network ; February 2017", "")
	require.NoError(t, err)
	assert.Equal(t, "Standalone Network ; February 2017", cfg.Passphrase)
}

func TestNewNetworkConfig_Invalid(t *testing.T) {
	_, err := NewNetworkConfig("devnet", "https://horizon.example", "", "")
	assert.Error(t, err)

	_, err = NewNetworkConfig(NetworkTestnet, "", "", "https://faucet.example")
	assert.Error(t, err)

	_, err = NewNetworkConfig(NetworkTestnet, "https://horizon.example", "", "")
	assert.Error(t, err, "testnet without a faucet url")
}

func TestNetworkConfig_FaucetAvailable(t *testing.T) {
	testnet, err := NewNetworkConfig(NetworkTestnet, "https://horizon.example", "", "https://faucet.example")
	require.NoError(t, err)
	assert.True(t, testnet.FaucetAvailable())

	mainnet, err := NewNetworkConfig(NetworkMainnet, "https://horizon.example", "", "https://faucet.example")
	require.NoError(t, err)
	assert.False(t, mainnet.FaucetAvailable(), "faucet url must be ignored off testnet")
}

func TestNormalizeBalances(t *testing.T) {
	raw := []RawBalance{
		AssetBalance{AssetType: "credit_alphanum4", AssetCode: "USDC", AssetIssuer: "GISSUER", Amount: "5.0000000"},
		NativeBalance{Amount: "100.0000000"},
		AssetBalance{AssetType: "liquidity_pool_shares", Amount: "1.0000000"},
	}

	got := NormalizeBalances(raw)

	require.Len(t, got, len(raw))
	assert.Equal(t, NormalizedBalance{AssetCode: "USDC", Amount: "5.0000000"}, got[0])
	assert.Equal(t, NormalizedBalance{AssetCode: NativeAssetCode, Amount: "100.0000000"}, got[1])
	assert.Equal(t, NormalizedBalance{AssetCode: "liquidity_pool_shares", Amount: "1.0000000"}, got[2])
}

func TestNormalizeBalances_Empty(t *testing.T) {
	got := NormalizeBalances(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestKeypair_StringRedactsSeed(t *testing.T) {
	kp := Keypair{PublicAddress: "GPUBLIC", SecretSeed: "SSECRET"}
	s := fmt.Sprintf("%v %s", kp, kp)
	assert.Contains(t, s, "GPUBLIC")
	assert.NotContains(t, s, "SSECRET")
}

func TestPaymentRequest_StringRedactsSecret(t *testing.T) {
	req := PaymentRequest{SenderAddress: "GA", SenderSecret: "SSECRET", ReceiverAddress: "GB", Amount: "10"}
	assert.NotContains(t, req.String(), "SSECRET")
	assert.Contains(t, req.String(), "GA -> GB")
}

func TestRejection_SequenceConsumed(t *testing.T) {
	tests := []struct {
		name     string
		r        Rejection
		consumed bool
	}{
		{"op underfunded", Rejection{TransactionCode: TxCodeFailed, OperationCodes: []string{OpCodeUnderfunded}}, true},
		{"fee bump inner failed", Rejection{TransactionCode: TxCodeFeeBumpInnerFail}, true},
		{"bad sequence", Rejection{TransactionCode: TxCodeBadSeq}, false},
		{"cannot pay fee", Rejection{TransactionCode: TxCodeInsufficientBal}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.consumed, tt.r.SequenceConsumed())
		})
	}
}

func TestRejection_HasOperationCode(t *testing.T) {
	r := Rejection{TransactionCode: TxCodeFailed, OperationCodes: []string{OpCodeNoDestination}}
	assert.True(t, r.HasOperationCode(OpCodeNoDestination))
	assert.False(t, r.HasOperationCode(OpCodeUnderfunded))
	assert.Equal(t, "tx_failed [op_no_destination]", r.String())
}
