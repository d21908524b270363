package ledger

import (
	"stellar-payment-service/internal/core/domain"

	"github.com/stellar/go/protocols/horizon"
)

const assetTypeNative = "native"

// decodeBalances maps Horizon balance lines onto the domain union,
// preserving order.
func decodeBalances(lines []horizon.Balance) []domain.RawBalance {
	out := make([]domain.RawBalance, 0, len(lines))
	for _, b := range lines {
		if b.Type == assetTypeNative {
			out = append(out, domain.NativeBalance{Amount: b.Balance})
			continue
		}
		out = append(out, domain.AssetBalance{
			AssetType:   b.Type,
			AssetCode:   b.Code,
			AssetIssuer: b.Issuer,
			Amount:      b.Balance,
		})
	}
	return out
}
