package handler

import (
	"stellar-payment-service/internal/adapter/http/dto"
	"stellar-payment-service/internal/adapter/http/middleware"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/apperror"
	"stellar-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
	fundingSvc ports.FundingService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService, fundingSvc ports.FundingService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, fundingSvc: fundingSvc}
}

// CreateAccount handles POST /api/v1/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	kp, err := h.accountSvc.CreateAccount()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, kp.PublicAddress)
	response.Created(c, dto.CreateAccountResponse{
		PublicAddress: kp.PublicAddress,
		SecretSeed:    kp.SecretSeed,
	})
}

// GetBalances handles GET /api/v1/accounts/:address/balances.
func (h *AccountHandler) GetBalances(c *gin.Context) {
	var uri dto.AddressURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid account address"))
		return
	}

	balances, err := h.accountSvc.GetAccountBalance(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.BalanceResponse{AssetCode: b.AssetCode, Amount: b.Amount})
	}
	response.OK(c, dto.BalancesResponse{Address: uri.Address, Balances: out})
}

// FundAccount handles POST /api/v1/accounts/:address/fund.
func (h *AccountHandler) FundAccount(c *gin.Context) {
	var uri dto.AddressURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid account address"))
		return
	}

	funded, err := h.fundingSvc.FundAccount(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FundResponse{Address: uri.Address, Funded: funded})
}
