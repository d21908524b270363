package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ACC_001", "Account not found", http.StatusNotFound),
			expected: "[ACC_001] Account not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("NET_001", "Ledger down", http.StatusServiceUnavailable, fmt.Errorf("connection refused")),
			expected: "[NET_001] Ledger down: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("SYS_001", "test", http.StatusBadRequest).Unwrap())
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("loading sender: %w", ErrAccountNotFound("GABC"))

	assert.True(t, errors.Is(err, ErrAccountNotFound("")))
	assert.False(t, errors.Is(err, ErrTransactionNotFound("")))
	assert.True(t, HasCode(err, CodeAccountNotFound))
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain")))
}

func TestTaxonomy(t *testing.T) {
	inner := fmt.Errorf("dial tcp: i/o timeout")

	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AccountNotFound", ErrAccountNotFound("GABC"), "ACC_001", 404},
		{"InvalidSecretKey", ErrInvalidSecretKey(inner), "KEY_001", 400},
		{"TransactionRejected", ErrTransactionRejected(nil, inner), "TX_001", 400},
		{"SubmissionFailed", ErrSubmissionFailed("abc", inner), "TX_002", 504},
		{"InvalidPayment", ErrInvalidPayment(inner), "TX_003", 400},
		{"TransactionNotFound", ErrTransactionNotFound("abc"), "TX_004", 404},
		{"UnsupportedOperation", ErrUnsupportedOperation("mainnet"), "FUND_001", 403},
		{"FundingError", ErrFundingError(inner), "FUND_002", 502},
		{"LedgerUnavailable", ErrLedgerUnavailable(inner), "NET_001", 503},
		{"Validation", Validation("bad"), "VAL_001", 400},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Internal", InternalError(inner), "SYS_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDetails(t *testing.T) {
	err := ErrSubmissionFailed("deadbeef", fmt.Errorf("timeout"))
	assert.Equal(t, map[string]string{"hash": "deadbeef"}, err.Details)

	err = ErrAccountNotFound("GABC")
	assert.Equal(t, map[string]string{"address": "GABC"}, err.Details)

	codes := struct{ Transaction string }{"tx_failed"}
	assert.Equal(t, codes, ErrTransactionRejected(codes, nil).Details)
}
