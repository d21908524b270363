package service

import (
	"context"
	"time"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	ledger  ports.LedgerClient
	builder txBuilder
	log     zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. baseFee is in stroops
// per operation; txTimeout bounds the on-chain validity window of every
// envelope built.
func NewPaymentService(
	ledger ports.LedgerClient,
	network domain.NetworkConfig,
	baseFee int64,
	txTimeout time.Duration,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		ledger:  ledger,
		builder: newTxBuilder(network.Passphrase, baseFee, txTimeout),
		log:     log,
	}
}

// Pay loads the sender, builds and signs a single native payment, and
// submits it. The account is reloaded on every call; a caller retrying after
// any failure gets a fresh sequence number.
func (s *PaymentServiceImpl) Pay(ctx context.Context, req domain.PaymentRequest) (*domain.Receipt, error) {
	account, err := s.ledger.LoadAccount(ctx, req.SenderAddress)
	if err != nil {
		return nil, err
	}

	signed, err := s.builder.build(account, req)
	if err != nil {
		s.log.Warn().
			Str("code", apperror.CodeOf(err)).
			Str("sender", req.SenderAddress).
			Str("receiver", req.ReceiverAddress).
			Msg("payment not built")
		return nil, err
	}

	log := s.log.With().
		Str("hash", signed.Hash).
		Str("sender", req.SenderAddress).
		Str("receiver", req.ReceiverAddress).
		Str("amount", req.Amount).
		Int64("sequence", signed.Sequence).
		Logger()

	receipt, err := s.ledger.SubmitTransaction(ctx, signed)
	if err != nil {
		log.Warn().Err(err).Str("code", apperror.CodeOf(err)).Msg("payment failed")
		return nil, err
	}

	log.Info().
		Int32("ledger", receipt.Ledger).
		Int64("fee_charged", receipt.FeeCharged).
		Msg("payment submitted")

	return receipt, nil
}

// GetTransaction looks up a transaction by hash. This is how a caller
// resolves a submission whose outcome was unknown.
func (s *PaymentServiceImpl) GetTransaction(ctx context.Context, hash string) (*domain.Receipt, error) {
	if hash == "" {
		return nil, apperror.Validation("transaction hash is required")
	}
	return s.ledger.TransactionDetail(ctx, hash)
}
