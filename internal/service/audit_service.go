package service

import (
	"context"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	log zerolog.Logger
}

// NewAuditService creates an audit service that writes entries to log.
func NewAuditService(log zerolog.Logger) ports.AuditService {
	return &auditService{log: log.With().Str("component", "audit").Logger()}
}

// Log records an audit entry. It never blocks the caller on I/O beyond the
// logger's writer.
func (s *auditService) Log(_ context.Context, entry *domain.AuditEntry) {
	if entry == nil {
		return
	}
	s.log.Info().
		Str("audit_id", entry.ID.String()).
		Str("request_id", entry.RequestID).
		Str("action", string(entry.Action)).
		Str("resource_type", entry.ResourceType).
		Str("resource_id", entry.ResourceID).
		Int("status", entry.Status).
		Str("ip", entry.IPAddress).
		Time("at", entry.CreatedAt).
		Msg("audit")
}
