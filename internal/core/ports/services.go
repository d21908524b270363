package ports

import (
	"context"

	"stellar-payment-service/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// AccountService covers keypair generation and account inspection.
type AccountService interface {
	CreateAccount() (*domain.Keypair, error)
	LoadAccount(ctx context.Context, address string) (*domain.AccountState, error)
	GetAccountBalance(ctx context.Context, address string) ([]domain.NormalizedBalance, error)
}

// PaymentService builds, signs and submits native-asset payments.
// Pay is not idempotent: after a TX_002 failure the caller must look the
// transaction up by hash before paying again.
type PaymentService interface {
	Pay(ctx context.Context, req domain.PaymentRequest) (*domain.Receipt, error)
	GetTransaction(ctx context.Context, hash string) (*domain.Receipt, error)
}

// FundingService requests faucet funding on the test network.
type FundingService interface {
	FundAccount(ctx context.Context, address string) (bool, error)
}

// AuditService records successful write operations.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditEntry)
}
