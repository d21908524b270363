package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"` // Diagnostic context callers act on
	Err        error       `json:"-"`                 // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any *AppError carrying the same code, so callers can write
// errors.Is(err, apperror.ErrAccountNotFound("")).
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails attaches diagnostic context and returns the same error.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err's chain contains an AppError with code.
func HasCode(err error, code string) bool {
	return CodeOf(err) == code
}

// Error codes.
const (
	CodeAccountNotFound      = "ACC_001"
	CodeInvalidSecretKey     = "KEY_001"
	CodeTransactionRejected  = "TX_001"
	CodeSubmissionFailed     = "TX_002"
	CodeInvalidPayment       = "TX_003"
	CodeTransactionNotFound  = "TX_004"
	CodeUnsupportedOperation = "FUND_001"
	CodeFundingError         = "FUND_002"
	CodeLedgerUnavailable    = "NET_001"
	CodeValidation           = "VAL_001"
	CodeRateLimitExceeded    = "RATE_001"
	CodeInternal             = "SYS_001"
)

// ---- Accounts & keys (ACC, KEY) ----

// ErrAccountNotFound is terminal: the address does not exist on the network.
func ErrAccountNotFound(address string) *AppError {
	return New(CodeAccountNotFound, "Account not found", http.StatusNotFound).WithDetails(map[string]string{"address": address})
}

// ErrInvalidSecretKey is terminal: the signing seed cannot be parsed.
func ErrInvalidSecretKey(err error) *AppError {
	return Wrap(CodeInvalidSecretKey, "Invalid secret key", http.StatusBadRequest, err)
}

// ---- Transactions (TX) ----

// ErrTransactionRejected is terminal for this submission. details carries the
// network result codes verbatim.
func ErrTransactionRejected(details interface{}, err error) *AppError {
	return Wrap(CodeTransactionRejected, "Transaction rejected by the network", http.StatusBadRequest, err).WithDetails(details)
}

// ErrSubmissionFailed means the outcome is unknown. The transaction hash is
// attached so the caller can look it up before building a new one.
func ErrSubmissionFailed(hash string, err error) *AppError {
	return Wrap(CodeSubmissionFailed, "Transaction submission failed, outcome unknown", http.StatusGatewayTimeout, err).
		WithDetails(map[string]string{"hash": hash})
}

// ErrInvalidPayment means the transaction could not be built locally.
func ErrInvalidPayment(err error) *AppError {
	return Wrap(CodeInvalidPayment, "Payment could not be built", http.StatusBadRequest, err)
}

func ErrTransactionNotFound(hash string) *AppError {
	return New(CodeTransactionNotFound, "Transaction not found", http.StatusNotFound).WithDetails(map[string]string{"hash": hash})
}

// ---- Funding (FUND) ----

// ErrUnsupportedOperation is a configuration error: funding off testnet.
func ErrUnsupportedOperation(network string) *AppError {
	return New(CodeUnsupportedOperation, "Funding is only available on testnet", http.StatusForbidden).
		WithDetails(map[string]string{"network": network})
}

// ErrFundingError is a transport-level faucet failure; safe to retry.
func ErrFundingError(err error) *AppError {
	return Wrap(CodeFundingError, "Error when funding account with the faucet", http.StatusBadGateway, err)
}

// ---- Network (NET) ----

// ErrLedgerUnavailable is a transient failure reaching the ledger API.
func ErrLedgerUnavailable(err error) *AppError {
	return Wrap(CodeLedgerUnavailable, "Ledger network unavailable", http.StatusServiceUnavailable, err)
}

// ---- Request handling (VAL, RATE, SYS) ----

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
