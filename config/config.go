package config

import (
	"fmt"
	"strings"
	"time"

	"stellar-payment-service/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Network NetworkConfig `mapstructure:"network"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// NetworkConfig selects the ledger network and tunes how it is reached.
type NetworkConfig struct {
	ID             string        `mapstructure:"id"` // mainnet, testnet, futurenet
	HorizonURL     string        `mapstructure:"horizon_url"`
	Passphrase     string        `mapstructure:"passphrase"` // empty = well-known passphrase of ID
	FaucetURL      string        `mapstructure:"faucet_url"`
	BaseFee        int64         `mapstructure:"base_fee"`        // stroops per operation
	TxTimeout      time.Duration `mapstructure:"tx_timeout"`      // on-chain validity window
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // per HTTP call
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryWaitMin   time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax   time.Duration `mapstructure:"retry_wait_max"`
}

// Domain converts the network section into the immutable domain value.
func (n NetworkConfig) Domain() (domain.NetworkConfig, error) {
	return domain.NewNetworkConfig(domain.NetworkID(n.ID), n.HorizonURL, n.Passphrase, n.FaucetURL)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // false = rate limiting disabled
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SPS_ (Stellar Payment Service).
// Nested keys use underscore: SPS_NETWORK_ID, SPS_NETWORK_HORIZON_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("network.id", "testnet")
	v.SetDefault("network.horizon_url", "https://horizon-testnet.stellar.org")
	v.SetDefault("network.passphrase", "")
	v.SetDefault("network.faucet_url", "https://friendbot.stellar.org")
	v.SetDefault("network.base_fee", 100)
	v.SetDefault("network.tx_timeout", "180s")
	v.SetDefault("network.request_timeout", "30s")
	v.SetDefault("network.max_retries", 3)
	v.SetDefault("network.retry_wait_min", "500ms")
	v.SetDefault("network.retry_wait_max", "5s")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// SPS_NETWORK_HORIZON_URL -> network.horizon_url
	v.SetEnvPrefix("SPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine, env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Network.BaseFee <= 0 {
		return fmt.Errorf("network.base_fee must be positive, got %d", c.Network.BaseFee)
	}
	// Time bounds have one-second resolution.
	if c.Network.TxTimeout < time.Second {
		return fmt.Errorf("network.tx_timeout must be at least 1s, got %s", c.Network.TxTimeout)
	}
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("network.request_timeout must be positive, got %s", c.Network.RequestTimeout)
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("network.max_retries must not be negative, got %d", c.Network.MaxRetries)
	}
	return nil
}
