package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stellar-payment-service/config"
	"stellar-payment-service/internal/adapter/faucet"
	httpHandler "stellar-payment-service/internal/adapter/http/handler"
	"stellar-payment-service/internal/adapter/http/middleware"
	"stellar-payment-service/internal/adapter/ledger"
	redisStorage "stellar-payment-service/internal/adapter/storage/redis"
	"stellar-payment-service/internal/adapter/transport"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/internal/service"
	"stellar-payment-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// SPS_CONFIG_FILE overrides the ./config.yaml lookup.
	cfg, err := config.Load(os.Getenv("SPS_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	network, err := cfg.Network.Domain()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid network config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, string(network.ID))

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("horizon", network.HorizonURL).
		Bool("faucet", network.FaucetAvailable()).
		Msg("Starting Stellar Payment Service")

	ctx := context.Background()

	opts := transport.Options{
		Timeout:      cfg.Network.RequestTimeout,
		RetryMax:     cfg.Network.MaxRetries,
		RetryWaitMin: cfg.Network.RetryWaitMin,
		RetryWaitMax: cfg.Network.RetryWaitMax,
	}

	// Ledger and faucet adapters
	ledgerClient := ledger.NewClient(network, opts, log)
	healthCheckers := []ports.HealthChecker{ledger.NewHealthCheck(ledgerClient, network.Passphrase)}

	var faucetClient ports.FaucetClient
	if network.FaucetAvailable() {
		fc, err := faucet.NewClient(network.FaucetURL, opts, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize faucet client")
		}
		faucetClient = fc
	}

	// Optional Redis for rate limiting
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		limiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, rate limiting is off")
	}

	// Business services
	accountSvc := service.NewAccountService(ledgerClient, log)
	paymentSvc := service.NewPaymentService(ledgerClient, network, cfg.Network.BaseFee, cfg.Network.TxTimeout, log)
	fundingSvc := service.NewFundingService(faucetClient, network, log)
	auditSvc := service.NewAuditService(log)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		PaymentSvc:     paymentSvc,
		FundingSvc:     fundingSvc,
		AuditSvc:       auditSvc,
		RateLimiter:    limiter,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// A payment loads the account, then submits; each call is bounded by the request timeout.
		WriteTimeout: cfg.Network.RequestTimeout*2 + 10*time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight payments are allowed to finish so callers learn their outcome.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Network.RequestTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
