package service

import (
	"context"
	"fmt"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stellar/go/keypair"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	ledger ports.LedgerClient
	log    zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(ledger ports.LedgerClient, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{ledger: ledger, log: log}
}

// CreateAccount generates a fresh keypair. Nothing is sent to the network
// and nothing is retained: the account exists on-chain only once funded.
func (s *AccountServiceImpl) CreateAccount() (*domain.Keypair, error) {
	kp, err := keypair.Random()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate keypair: %w", err))
	}

	s.log.Info().Str("address", kp.Address()).Msg("keypair generated")

	return &domain.Keypair{
		PublicAddress: kp.Address(),
		SecretSeed:    kp.Seed(),
	}, nil
}

// LoadAccount fetches the current account state. It is never cached.
func (s *AccountServiceImpl) LoadAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	state, err := s.ledger.LoadAccount(ctx, address)
	if err != nil {
		s.log.Debug().Err(err).Str("address", address).Msg("load account failed")
		return nil, err
	}
	return state, nil
}

// GetAccountBalance returns the balances of address in network order.
func (s *AccountServiceImpl) GetAccountBalance(ctx context.Context, address string) ([]domain.NormalizedBalance, error) {
	state, err := s.LoadAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeBalances(state.Balances), nil
}
