package domain

import "fmt"

// PaymentRequest is the input of a single native-asset payment.
// It lives only for the duration of one submission.
type PaymentRequest struct {
	SenderAddress   string
	SenderSecret    string
	ReceiverAddress string
	Amount          string // decimal, up to 7 places for the native asset
}

// String redacts the sender secret.
func (r PaymentRequest) String() string {
	return fmt.Sprintf("PaymentRequest{%s -> %s, amount: %s, secret: [redacted]}",
		r.SenderAddress, r.ReceiverAddress, r.Amount)
}

// SignedTransaction is a signed envelope ready for submission.
// Hash is the network-scoped identifier used to look the transaction up
// when its submission outcome is unknown.
type SignedTransaction struct {
	Hash        string
	EnvelopeXDR string
	Sequence    int64
}

// Receipt is what the network reports for an included transaction.
type Receipt struct {
	Hash        string `json:"hash"`
	Ledger      int32  `json:"ledger"`
	Successful  bool   `json:"successful"`
	FeeCharged  int64  `json:"fee_charged"`
	EnvelopeXDR string `json:"envelope_xdr"`
	ResultXDR   string `json:"result_xdr"`
}

// Well-known transaction and operation result codes. Only tx_failed and
// tx_fee_bump_inner_failed mean the transaction was applied; see
// Rejection.SequenceConsumed.
const (
	TxCodeFailed           = "tx_failed"
	TxCodeFeeBumpInnerFail = "tx_fee_bump_inner_failed"
	TxCodeBadSeq           = "tx_bad_seq"
	TxCodeInsufficientBal  = "tx_insufficient_balance"
	OpCodeUnderfunded      = "op_underfunded"
	OpCodeNoDestination    = "op_no_destination"
	OpCodeMalformed        = "op_malformed"
)

// Rejection carries the result codes returned by the network, verbatim.
type Rejection struct {
	TransactionCode      string   `json:"transaction"`
	InnerTransactionCode string   `json:"inner_transaction,omitempty"`
	OperationCodes       []string `json:"operations,omitempty"`
}

// SequenceConsumed reports whether the network applied the rejected
// transaction. In that case the fee was charged and the sender's sequence
// number advanced; otherwise the account is untouched. Either way the
// caller must reload the account before building a new transaction.
func (r Rejection) SequenceConsumed() bool {
	return r.TransactionCode == TxCodeFailed || r.TransactionCode == TxCodeFeeBumpInnerFail
}

// HasOperationCode reports whether any operation failed with code.
func (r Rejection) HasOperationCode(code string) bool {
	for _, c := range r.OperationCodes {
		if c == code {
			return true
		}
	}
	return false
}

func (r Rejection) String() string {
	if len(r.OperationCodes) == 0 {
		return r.TransactionCode
	}
	return fmt.Sprintf("%s %v", r.TransactionCode, r.OperationCodes)
}
