package domain

import "fmt"

// NativeAssetCode is the symbolic code reported for the native asset.
const NativeAssetCode = "XLM"

// Keypair is a Stellar public address and its secret seed.
// The seed belongs to the caller; the service never keeps or logs it.
type Keypair struct {
	PublicAddress string
	SecretSeed    string
}

// String redacts the seed so formatting a Keypair cannot leak it.
func (k Keypair) String() string {
	return fmt.Sprintf("Keypair{%s, seed: [redacted]}", k.PublicAddress)
}

// AccountState is a snapshot of an account as reported by the network.
// It is loaded fresh for every operation and never cached: the sequence
// number is consumed by each submitted transaction.
type AccountState struct {
	Address  string
	Sequence int64
	Balances []RawBalance
}

// RawBalance is one balance line as decoded from the network.
// It is either a NativeBalance or an AssetBalance.
type RawBalance interface {
	Normalize() NormalizedBalance
	rawBalance()
}

// NativeBalance is the balance of the network's built-in asset.
type NativeBalance struct {
	Amount string
}

func (NativeBalance) rawBalance() {}

// Normalize implements RawBalance.
func (b NativeBalance) Normalize() NormalizedBalance {
	return NormalizedBalance{AssetCode: NativeAssetCode, Amount: b.Amount}
}

// AssetBalance is the balance of an issued asset or a liquidity pool share.
type AssetBalance struct {
	AssetType   string // credit_alphanum4, credit_alphanum12, liquidity_pool_shares
	AssetCode   string
	AssetIssuer string
	Amount      string
}

func (AssetBalance) rawBalance() {}

// Normalize implements RawBalance. Pool shares carry no code and are
// reported under their asset type.
func (b AssetBalance) Normalize() NormalizedBalance {
	code := b.AssetCode
	if code == "" {
		code = b.AssetType
	}
	return NormalizedBalance{AssetCode: code, Amount: b.Amount}
}

// NormalizedBalance is the output-facing projection of a RawBalance.
type NormalizedBalance struct {
	AssetCode string `json:"asset_code"`
	Amount    string `json:"amount"`
}

// NormalizeBalances maps raw balances one-to-one, preserving order.
func NormalizeBalances(raw []RawBalance) []NormalizedBalance {
	out := make([]NormalizedBalance, 0, len(raw))
	for _, b := range raw {
		out = append(out, b.Normalize())
	}
	return out
}
