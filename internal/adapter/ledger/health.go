package ledger

import (
	"context"
	"fmt"
	"time"

	"stellar-payment-service/pkg/apperror"
)

// HealthCheck implements ports.HealthChecker for Horizon.
type HealthCheck struct {
	client     *Client
	passphrase string
}

// NewHealthCheck creates a Horizon health checker. A server reporting a
// different network passphrase is unhealthy.
func NewHealthCheck(client *Client, passphrase string) *HealthCheck {
	return &HealthCheck{client: client, passphrase: passphrase}
}

// Ping fetches the Horizon root document.
func (h *HealthCheck) Ping(ctx context.Context) error {
	start := time.Now()

	root, err := h.client.horizon(ctx, h.client.query).Root()
	if err != nil {
		err = apperror.ErrLedgerUnavailable(err)
		h.client.report(opRoot, err, start)
		return err
	}
	h.client.report(opRoot, nil, start)

	if root.NetworkPassphrase != "" && root.NetworkPassphrase != h.passphrase {
		return fmt.Errorf("horizon serves %q, configured for %q", root.NetworkPassphrase, h.passphrase)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "horizon"
}
