package handler

import (
	"stellar-payment-service/internal/adapter/http/middleware"
	"stellar-payment-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	PaymentSvc     ports.PaymentService
	FundingSvc     ports.FundingService
	AuditSvc       ports.AuditService // nil = audit logging disabled
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.AccountSvc, deps.FundingSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", rl(middleware.GroupAccounts), accountHandler.CreateAccount)
		accounts.GET("/:address/balances", rl(middleware.GroupQueries), accountHandler.GetBalances)
		accounts.POST("/:address/fund", rl(middleware.GroupFund), accountHandler.FundAccount)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	v1.POST("/payments", rl(middleware.GroupPayments), paymentHandler.Pay)
	v1.GET("/transactions/:hash", rl(middleware.GroupQueries), paymentHandler.GetTransaction)

	return r
}
