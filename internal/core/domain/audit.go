package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateAccount AuditAction = "CREATE_ACCOUNT"
	AuditActionFundAccount   AuditAction = "FUND_ACCOUNT"
	AuditActionPayment       AuditAction = "PAYMENT"
)

// AuditEntry records a single audited action. Entries are logged, not stored.
type AuditEntry struct {
	ID           uuid.UUID   `json:"id"`
	RequestID    string      `json:"request_id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Status       int         `json:"status"`
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
