package dto

// CreateAccountResponse carries a freshly generated keypair. The seed is
// returned once and never kept by the service.
type CreateAccountResponse struct {
	PublicAddress string `json:"public_address"`
	SecretSeed    string `json:"secret_seed"`
}

// AddressURI binds the :address path parameter.
type AddressURI struct {
	Address string `uri:"address" binding:"required,stellar_address"`
}

// HashURI binds the :hash path parameter.
type HashURI struct {
	Hash string `uri:"hash" binding:"required,len=64,hexadecimal"`
}

// BalanceResponse is one balance line.
type BalanceResponse struct {
	AssetCode string `json:"asset_code"`
	Amount    string `json:"amount"`
}

// BalancesResponse lists an account's balances in network order.
type BalancesResponse struct {
	Address  string            `json:"address"`
	Balances []BalanceResponse `json:"balances"`
}

// FundResponse reports whether the faucet funded the account.
type FundResponse struct {
	Address string `json:"address"`
	Funded  bool   `json:"funded"`
}

// PaymentRequest is the request body for a native-asset payment. Amount is
// a decimal string with at most 7 fractional digits.
type PaymentRequest struct {
	SenderAddress   string `json:"sender_address" binding:"required,stellar_address"`
	SenderSecret    string `json:"sender_secret" binding:"required"`
	ReceiverAddress string `json:"receiver_address" binding:"required,stellar_address"`
	Amount          string `json:"amount" binding:"required,stellar_amount"`
}

// TransactionResponse is the network receipt of a transaction.
type TransactionResponse struct {
	Hash        string `json:"hash"`
	Ledger      int32  `json:"ledger"`
	Successful  bool   `json:"successful"`
	FeeCharged  int64  `json:"fee_charged"`
	EnvelopeXDR string `json:"envelope_xdr"`
	ResultXDR   string `json:"result_xdr"`
}
