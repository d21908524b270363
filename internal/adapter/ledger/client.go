// Package ledger implements ports.LedgerClient against a Horizon server.
package ledger

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stellar-payment-service/internal/adapter/transport"
	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/pkg/apperror"
	"stellar-payment-service/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon"
)

// Operation names used in logs and metrics.
const (
	opLoadAccount       = "load_account"
	opSubmitTransaction = "submit_transaction"
	opTransactionDetail = "transaction_detail"
	opRoot              = "root"
)

// Client talks to Horizon through two transports: queries are retried,
// submissions are sent exactly once.
type Client struct {
	horizonURL string
	query      *http.Client
	submit     *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client for cfg. opts.Timeout bounds every HTTP call.
func NewClient(cfg domain.NetworkConfig, opts transport.Options, log zerolog.Logger) *Client {
	log = log.With().Str("component", "ledger").Logger()
	return &Client{
		horizonURL: cfg.HorizonURL,
		query:      transport.NewRetryableClient(opts, log).StandardClient(),
		submit:     transport.NewPlainClient(opts.Timeout),
		log:        log,
	}
}

// horizon returns a horizonclient bound to ctx. horizonclient has no
// context-aware API, so ctx is attached to every request it sends.
func (c *Client) horizon(ctx context.Context, httpClient *http.Client) *horizonclient.Client {
	return &horizonclient.Client{
		HorizonURL: c.horizonURL,
		HTTP:       contextHTTP{ctx: ctx, client: httpClient},
	}
}

// LoadAccount implements ports.LedgerClient.
func (c *Client) LoadAccount(ctx context.Context, address string) (*domain.AccountState, error) {
	start := time.Now()

	account, err := c.horizon(ctx, c.query).AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		err = classifyQueryError(err, func() error { return apperror.ErrAccountNotFound(address) })
		c.report(opLoadAccount, err, start)
		return nil, err
	}

	c.report(opLoadAccount, nil, start)
	return &domain.AccountState{
		Address:  account.AccountID,
		Sequence: account.Sequence,
		Balances: decodeBalances(account.Balances),
	}, nil
}

// SubmitTransaction implements ports.LedgerClient.
func (c *Client) SubmitTransaction(ctx context.Context, tx domain.SignedTransaction) (*domain.Receipt, error) {
	start := time.Now()

	resp, err := c.horizon(ctx, c.submit).SubmitTransactionXDR(tx.EnvelopeXDR)
	if err != nil {
		err = classifySubmitError(tx.Hash, err)
		c.report(opSubmitTransaction, err, start)
		return nil, err
	}

	c.report(opSubmitTransaction, nil, start)
	return toReceipt(resp), nil
}

// TransactionDetail implements ports.LedgerClient.
func (c *Client) TransactionDetail(ctx context.Context, hash string) (*domain.Receipt, error) {
	start := time.Now()

	resp, err := c.horizon(ctx, c.query).TransactionDetail(hash)
	if err != nil {
		err = classifyQueryError(err, func() error { return apperror.ErrTransactionNotFound(hash) })
		c.report(opTransactionDetail, err, start)
		return nil, err
	}

	c.report(opTransactionDetail, nil, start)
	return toReceipt(resp), nil
}

func (c *Client) report(operation string, err error, start time.Time) {
	took := time.Since(start)
	outcome := outcomeOf(err)
	metrics.ReportLedgerCall(operation, outcome, took)

	ev := c.log.Debug()
	if outcome == metrics.OutcomeUnavailable || outcome == metrics.OutcomeUnknown {
		ev = c.log.Warn().Err(err)
	}
	ev.Str("operation", operation).Str("outcome", outcome).Dur("took", took).Msg("horizon call")
}

func toReceipt(tx horizon.Transaction) *domain.Receipt {
	return &domain.Receipt{
		Hash:        tx.Hash,
		Ledger:      tx.Ledger,
		Successful:  tx.Successful,
		FeeCharged:  tx.FeeCharged,
		EnvelopeXDR: tx.EnvelopeXdr,
		ResultXDR:   tx.ResultXdr,
	}
}

// contextHTTP implements horizonclient.HTTP, attaching ctx to every request.
type contextHTTP struct {
	ctx    context.Context
	client *http.Client
}

func (h contextHTTP) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req.WithContext(h.ctx))
}

func (h contextHTTP) Get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(h.ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return h.client.Do(req)
}

func (h contextHTTP) PostForm(rawURL string, data url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(h.ctx, http.MethodPost, rawURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.client.Do(req)
}
