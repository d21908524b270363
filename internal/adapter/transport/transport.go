// Package transport builds the outbound HTTP clients used to reach the
// ledger API and the faucet.
package transport

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Options controls timeouts and retry backoff of outbound clients.
type Options struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewRetryableClient returns a client that retries transport errors, 429 and
// 5xx responses with jittered backoff. After the last attempt the final
// response is returned as is instead of being turned into an error.
func NewRetryableClient(opts Options, log zerolog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = opts.Timeout
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.Backoff = retryablehttp.LinearJitterBackoff
	client.CheckRetry = retryablehttp.DefaultRetryPolicy
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = NewLeveledLogger(log)
	client.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("path", resp.Request.URL.Path).
			Int("status", resp.StatusCode).
			Msg("response received")
	}
	return client
}

// NewPlainClient returns a client with a timeout and no retries. It is used
// where repeating a request could change state.
func NewPlainClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// LeveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type LeveledLogger struct {
	inner zerolog.Logger
}

// NewLeveledLogger wraps log.
func NewLeveledLogger(log zerolog.Logger) *LeveledLogger {
	return &LeveledLogger{inner: log}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...any) {
	l.inner.Error().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...any) {
	l.inner.Info().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...any) {
	l.inner.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...any) {
	l.inner.Debug().Fields(keysAndValues).Msg(msg)
}
