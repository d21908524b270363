package service

import (
	"fmt"
	"time"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/pkg/apperror"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// defaultTxTimeout applies when the configured validity window is shorter than
// the one-second resolution of time bounds.
const defaultTxTimeout = 180 * time.Second

// txBuilder turns a payment request and a freshly loaded account into a
// signed single-operation envelope.
type txBuilder struct {
	passphrase string
	baseFee    int64
	timeout    time.Duration
}

func newTxBuilder(passphrase string, baseFee int64, timeout time.Duration) txBuilder {
	if baseFee <= 0 {
		baseFee = txnbuild.MinBaseFee
	}
	if timeout < time.Second {
		timeout = defaultTxTimeout
	}
	return txBuilder{passphrase: passphrase, baseFee: baseFee, timeout: timeout}
}

// build signs a native payment from account. The envelope carries
// account.Sequence+1.
func (b txBuilder) build(account *domain.AccountState, req domain.PaymentRequest) (domain.SignedTransaction, error) {
	kp, err := keypair.ParseFull(req.SenderSecret)
	if err != nil {
		return domain.SignedTransaction{}, apperror.ErrInvalidSecretKey(err)
	}

	source := txnbuild.SimpleAccount{
		AccountID: account.Address,
		Sequence:  account.Sequence,
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &source,
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: req.ReceiverAddress,
				Amount:      req.Amount,
				Asset:       txnbuild.NativeAsset{},
			},
		},
		BaseFee: b.baseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(b.timeout / time.Second)),
		},
	})
	if err != nil {
		return domain.SignedTransaction{}, apperror.ErrInvalidPayment(err)
	}

	tx, err = tx.Sign(b.passphrase, kp)
	if err != nil {
		return domain.SignedTransaction{}, apperror.ErrInvalidPayment(fmt.Errorf("sign: %w", err))
	}

	hash, err := tx.HashHex(b.passphrase)
	if err != nil {
		return domain.SignedTransaction{}, apperror.InternalError(fmt.Errorf("hash transaction: %w", err))
	}

	envelope, err := tx.Base64()
	if err != nil {
		return domain.SignedTransaction{}, apperror.ErrInvalidPayment(fmt.Errorf("encode envelope: %w", err))
	}

	return domain.SignedTransaction{
		Hash:        hash,
		EnvelopeXDR: envelope,
		Sequence:    tx.SequenceNumber(),
	}, nil
}
