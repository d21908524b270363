package ports

//go:generate mockgen -package=mocks -destination=mocks/mocks.go -source=./ledger.go
//go:generate mockgen -package=mocks -destination=mocks/services_mocks.go -source=./services.go

import (
	"context"

	"stellar-payment-service/internal/core/domain"
)

// LedgerClient is the query/submission API of the ledger network.
// Implementations hold no per-call state and are safe for concurrent use.
// Failures are always returned as typed *apperror.AppError values.
type LedgerClient interface {
	// LoadAccount returns the current state of address.
	// Fails with ACC_001 when the account does not exist, NET_001 otherwise.
	LoadAccount(ctx context.Context, address string) (*domain.AccountState, error)

	// SubmitTransaction submits a signed envelope and waits for inclusion.
	// Fails with TX_001 when the network returns result codes and TX_002
	// when the outcome is unknown.
	SubmitTransaction(ctx context.Context, tx domain.SignedTransaction) (*domain.Receipt, error)

	// TransactionDetail looks up an included transaction by hash.
	// Fails with TX_004 when the network does not know the hash.
	TransactionDetail(ctx context.Context, hash string) (*domain.Receipt, error)
}

// FaucetClient requests test-network funding for an address.
type FaucetClient interface {
	// RequestFunding returns the faucet's HTTP status code. A non-nil error
	// means no HTTP response was obtained at all.
	RequestFunding(ctx context.Context, address string) (int, error)
}
