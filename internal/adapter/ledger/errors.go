package ledger

import (
	"errors"
	"net/http"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/pkg/apperror"
	"stellar-payment-service/pkg/metrics"

	"github.com/stellar/go/clients/horizonclient"
)

// classifyQueryError maps a failed read. A Horizon not_found problem becomes
// notFound(); anything else is a transient NET_001. horizonclient only yields
// *horizonclient.Error for problem documents, so a plain-text 404 from a proxy
// counts as unavailable.
func classifyQueryError(err error, notFound func() error) error {
	var herr *horizonclient.Error
	if errors.As(err, &herr) && herr.Problem.Status == http.StatusNotFound {
		return notFound()
	}
	return apperror.ErrLedgerUnavailable(err)
}

// classifySubmitError maps a failed submission. Only a problem carrying
// result codes is a definite rejection; timeouts, 5xx and transport errors
// leave the outcome unknown.
func classifySubmitError(hash string, err error) error {
	var herr *horizonclient.Error
	if errors.As(err, &herr) {
		if codes, cerr := herr.ResultCodes(); cerr == nil && codes != nil {
			return apperror.ErrTransactionRejected(&domain.Rejection{
				TransactionCode:      codes.TransactionCode,
				InnerTransactionCode: codes.InnerTransactionCode,
				OperationCodes:       codes.OperationCodes,
			}, err)
		}
	}
	return apperror.ErrSubmissionFailed(hash, err)
}

func outcomeOf(err error) string {
	switch apperror.CodeOf(err) {
	case "":
		return metrics.OutcomeSuccess
	case apperror.CodeAccountNotFound, apperror.CodeTransactionNotFound:
		return metrics.OutcomeNotFound
	case apperror.CodeTransactionRejected:
		return metrics.OutcomeRejected
	case apperror.CodeSubmissionFailed:
		return metrics.OutcomeUnknown
	default:
		return metrics.OutcomeUnavailable
	}
}
