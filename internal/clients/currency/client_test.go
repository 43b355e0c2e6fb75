package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func newTestClient(baseURL string, allowList []string) Client {
	return New(config.HTTPConfiguration{
		BaseURL: baseURL,
		APIKey:  "test-key",
	}, "RUB", allowList, nil)
}

func Test_Client_Convert(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		currencyCode string
		handler      http.HandlerFunc
		want         decimal.Decimal
		wantErr      error
	}{
		{
			name:         "home currency short-circuits without a request",
			amount:       decimal.RequireFromString("99.999"),
			currencyCode: "RUB",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected for home currency conversion")
			},
			want: decimal.RequireFromString("100.00"),
		},
		{
			name:         "negative amount is rejected",
			amount:       decimal.NewFromInt(-1),
			currencyCode: "USD",
			wantErr:      common.ErrInvalidArgument,
		},
		{
			name:         "empty currency code is rejected",
			amount:       decimal.NewFromInt(10),
			currencyCode: "",
			wantErr:      common.ErrInvalidArgument,
		},
		{
			name:         "success rounds to two decimals",
			amount:       decimal.NewFromInt(100),
			currencyCode: "USD",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "100", r.URL.Query().Get("amount"))
				assert.Equal(t, "USD", r.URL.Query().Get("from"))
				assert.Equal(t, "RUB", r.URL.Query().Get("to"))
				assert.Equal(t, "test-key", r.Header.Get("apikey"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"result": 7025.18642}`))
			},
			want: decimal.RequireFromString("7025.19"),
		},
		{
			name:         "upstream error degrades to zero",
			amount:       decimal.NewFromInt(100),
			currencyCode: "USD",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			want: decimal.Zero,
		},
		{
			name:         "missing result field degrades to zero",
			amount:       decimal.NewFromInt(100),
			currencyCode: "USD",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success": false}`))
			},
			want: decimal.Zero,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := ""
			if tt.handler != nil {
				srv := httptest.NewServer(tt.handler)
				defer srv.Close()
				baseURL = srv.URL
			}

			c := newTestClient(baseURL, nil)

			got, err := c.Convert(context.Background(), tt.amount, tt.currencyCode)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func Test_Client_Convert_transportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, nil)

	got, err := c.Convert(context.Background(), decimal.NewFromInt(10), "USD")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func Test_Client_LatestRates(t *testing.T) {
	tests := []struct {
		name      string
		allowList []string
		handler   http.HandlerFunc
		want      []string
		wantErr   error
	}{
		{
			name:      "projects onto the allow-list in order",
			allowList: []string{"USD", "EUR", "GBP"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"rates": {"EUR": 0.0112, "USD": 0.0127, "JPY": 1.87}}`))
			},
			want: []string{"USD", "EUR"},
		},
		{
			name:      "absent rates field yields an empty list",
			allowList: []string{"USD"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{}`))
			},
			want: []string{},
		},
		{
			name:      "non-200 fails the fetch",
			allowList: []string{"USD"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: common.ErrCurrencyFetchFailed,
		},
		{
			name:      "undecodable body fails the fetch",
			allowList: []string{"USD"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>maintenance</html>`))
			},
			wantErr: common.ErrCurrencyFetchFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := newTestClient(srv.URL, tt.allowList)

			got, err := c.LatestRates(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			currencies := make([]string, 0, len(got))
			for _, rate := range got {
				currencies = append(currencies, rate.Currency)
			}
			assert.Equal(t, tt.want, currencies)
		})
	}
}

func Test_Client_LatestRates_transportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, []string{"USD"})

	_, err := c.LatestRates(context.Background())
	require.ErrorIs(t, err, common.ErrCurrencyFetchFailed)
}
