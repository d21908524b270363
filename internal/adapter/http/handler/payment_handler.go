package handler

import (
	"stellar-payment-service/internal/adapter/http/dto"
	"stellar-payment-service/internal/adapter/http/middleware"
	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/apperror"
	"stellar-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Pay handles POST /api/v1/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Validation messages never echo field values, so the seed stays out.
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.paymentSvc.Pay(c.Request.Context(), domain.PaymentRequest{
		SenderAddress:   req.SenderAddress,
		SenderSecret:    req.SenderSecret,
		ReceiverAddress: req.ReceiverAddress,
		Amount:          req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, receipt.Hash)
	response.Created(c, toTransactionResponse(receipt))
}

// GetTransaction handles GET /api/v1/transactions/:hash.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	var uri dto.HashURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid transaction hash"))
		return
	}

	receipt, err := h.paymentSvc.GetTransaction(c.Request.Context(), uri.Hash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(receipt))
}

func toTransactionResponse(r *domain.Receipt) dto.TransactionResponse {
	return dto.TransactionResponse{
		Hash:        r.Hash,
		Ledger:      r.Ledger,
		Successful:  r.Successful,
		FeeCharged:  r.FeeCharged,
		EnvelopeXDR: r.EnvelopeXDR,
		ResultXDR:   r.ResultXDR,
	}
}
