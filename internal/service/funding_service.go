package service

import (
	"context"

	"stellar-payment-service/internal/core/domain"
	"stellar-payment-service/internal/core/ports"
	"stellar-payment-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// FundingServiceImpl implements ports.FundingService.
type FundingServiceImpl struct {
	faucet  ports.FaucetClient
	network domain.NetworkConfig
	log     zerolog.Logger
}

// NewFundingService creates a new FundingServiceImpl. faucet may be nil when
// the network has no faucet.
func NewFundingService(faucet ports.FaucetClient, network domain.NetworkConfig, log zerolog.Logger) *FundingServiceImpl {
	return &FundingServiceImpl{faucet: faucet, network: network, log: log}
}

// FundAccount asks the faucet to fund address. It returns true only for a
// 2xx answer; any other status is false with a nil error, since the faucet
// refuses already-funded accounts with a 400.
func (s *FundingServiceImpl) FundAccount(ctx context.Context, address string) (bool, error) {
	if !s.network.FaucetAvailable() || s.faucet == nil {
		return false, apperror.ErrUnsupportedOperation(string(s.network.ID))
	}

	status, err := s.faucet.RequestFunding(ctx, address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("faucet unreachable")
		return false, apperror.ErrFundingError(err)
	}

	funded := status >= 200 && status < 300
	s.log.Info().Str("address", address).Int("status", status).Bool("funded", funded).Msg("faucet answered")
	return funded, nil
}
