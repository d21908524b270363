package middleware

import (
	"net/http"
	"time"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("address")
		}

		auditSvc.Log(c.Request.Context(), &domain.AuditEntry{
			ID:           uuid.New(),
			RequestID:    response.RequestID(c),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Status:       status,
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	if method != http.MethodPost {
		return "", ""
	}
	switch route {
	case "/api/v1/accounts":
		return domain.AuditActionCreateAccount, "account"
	case "/api/v1/accounts/:address/fund":
		return domain.AuditActionFundAccount, "account"
	case "/api/v1/payments":
		return domain.AuditActionPayment, "transaction"
	}
	return "", ""
}
