// Package faucet implements ports.FaucetClient against a Friendbot-style
// funding endpoint.
package faucet

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"stellar-payment-service/internal/adapter/transport"
	"stellar-payment-service/pkg/metrics"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Client calls GET {faucetURL}?addr={address}.
type Client struct {
	baseURL *url.URL
	http    *retryablehttp.Client
	log     zerolog.Logger
}

// NewClient creates a faucet client for faucetURL.
func NewClient(faucetURL string, opts transport.Options, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(faucetURL)
	if err != nil {
		return nil, fmt.Errorf("parse faucet url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("faucet url %q must be absolute", faucetURL)
	}

	log = log.With().Str("component", "faucet").Logger()
	return &Client{
		baseURL: u,
		http:    transport.NewRetryableClient(opts, log),
		log:     log,
	}, nil
}

// RequestFunding implements ports.FaucetClient. Server errors are retried;
// the status of the last attempt is returned.
func (c *Client) RequestFunding(ctx context.Context, address string) (int, error) {
	u := *c.baseURL
	q := u.Query()
	q.Set("addr", address)
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("creating faucet request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ReportFaucetCall("error")
		return 0, fmt.Errorf("faucet request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	metrics.ReportFaucetCall(fmt.Sprintf("%dxx", resp.StatusCode/100))
	return resp.StatusCode, nil
}
