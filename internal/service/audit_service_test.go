package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"stellar-payment-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Log(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(zerolog.New(&buf))

	svc.Log(context.Background(), &domain.AuditEntry{
		ID:           uuid.New(),
		RequestID:    "req-1",
		Action:       domain.AuditActionPayment,
		ResourceType: "transaction",
		ResourceID:   "abc123",
		Status:       201,
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "audit", line["message"])
	assert.Equal(t, "PAYMENT", line["action"])
	assert.Equal(t, "abc123", line["resource_id"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, float64(201), line["status"])
}

func TestAuditService_Log_Nil(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(zerolog.New(&buf))

	svc.Log(context.Background(), nil)
	assert.Zero(t, buf.Len())
}
