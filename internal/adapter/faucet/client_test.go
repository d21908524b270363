package faucet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stellar-payment-service/internal/adapter/transport"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"

func testOptions() transport.Options {
	return transport.Options{
		Timeout:      2 * time.Second,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 2 * time.Millisecond,
	}
}

func TestClient_RequestFunding(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{"funded", http.StatusOK, 1},
		{"already funded", http.StatusBadRequest, 1},
		{"server error retried", http.StatusInternalServerError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, testAddress, r.URL.Query().Get("addr"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, err := NewClient(srv.URL, testOptions(), zerolog.Nop())
			require.NoError(t, err)

			status, err := c.RequestFunding(context.Background(), testAddress)
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestClient_RequestFunding_KeepsBaseQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fund", r.URL.Path)
		assert.Equal(t, "v1", r.URL.Query().Get("api"))
		assert.Equal(t, testAddress, r.URL.Query().Get("addr"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/fund?api=v1", testOptions(), zerolog.Nop())
	require.NoError(t, err)

	status, err := c.RequestFunding(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestClient_RequestFunding_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := NewClient(srv.URL, testOptions(), zerolog.Nop())
	require.NoError(t, err)

	status, err := c.RequestFunding(context.Background(), testAddress)
	assert.Error(t, err)
	assert.Zero(t, status)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("friendbot", testOptions(), zerolog.Nop())
	assert.Error(t, err)
}
