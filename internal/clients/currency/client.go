package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/common/metrics"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

var logMessage = "[CURRENCY-CLIENT]"

const serviceName = "currency_api"

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	// Convert converts amount from the given currency into the home
	// currency. Conversion is best-effort: upstream trouble degrades to
	// 0.00 instead of an error.
	Convert(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, error)

	// LatestRates fetches the latest rates projected onto the configured
	// currency allow-list.
	LatestRates(ctx context.Context) ([]models.CurrencyRate, error)
}

type client struct {
	baseURL      string
	apiKey       string
	homeCurrency string
	allowList    []string
	httpClient   *resty.Client
	metrics      metrics.Metrics
}

func New(configuration config.HTTPConfiguration, homeCurrency string, allowList []string, metrics metrics.Metrics) Client {
	// Single attempt per call, no retries.
	restyClient := resty.New().
		SetRetryCount(0).
		SetTimeout(configuration.Timeout)

	return client{
		baseURL:      configuration.BaseURL,
		apiKey:       configuration.APIKey,
		homeCurrency: homeCurrency,
		allowList:    allowList,
		httpClient:   restyClient,
		metrics:      metrics,
	}
}

type convertResponse struct {
	Result *decimal.Decimal `json:"result"`
}

func (c client) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, error) {
	if currencyCode == c.homeCurrency {
		return common.RoundMoney(amount), nil
	}

	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", common.ErrInvalidArgument)
	}
	if currencyCode == "" {
		return decimal.Zero, fmt.Errorf("%w: currency code is empty", common.ErrInvalidArgument)
	}

	startTime := time.Now()
	url := fmt.Sprintf("%s/convert", c.baseURL)

	logFields := []log.Field{
		log.String("url", url),
		log.String("from", currencyCode),
		log.String("amount", amount.String()),
	}

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetHeader("apikey", c.apiKey).
		SetQueryParams(map[string]string{
			"amount": amount.String(),
			"from":   currencyCode,
			"to":     c.homeCurrency,
		}).
		Get(url)
	if err != nil {
		log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		return decimal.Zero, nil
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().
			Record(time.Since(startTime), serviceName, httpRes.Request.Method, url, httpRes.StatusCode())
	}

	if httpRes.StatusCode() != http.StatusOK {
		log.Warn(ctx, logMessage, append(logFields,
			log.String("httpStatusCode", httpRes.Status()))...)
		return decimal.Zero, nil
	}

	var res convertResponse
	if err := json.Unmarshal(httpRes.Body(), &res); err != nil || res.Result == nil {
		log.Warn(ctx, logMessage, append(logFields,
			log.String("message", "response has no numeric 'result' field"))...)
		return decimal.Zero, nil
	}

	return common.RoundMoney(*res.Result), nil
}

type latestRatesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (c client) LatestRates(ctx context.Context) (res []models.CurrencyRate, err error) {
	startTime := time.Now()
	url := fmt.Sprintf("%s/latest", c.baseURL)

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, log.String("url", url), log.Err(err))
		}
	}()

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetHeader("apikey", c.apiKey).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCurrencyFetchFailed, err)
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().
			Record(time.Since(startTime), serviceName, httpRes.Request.Method, url, httpRes.StatusCode())
	}

	if httpRes.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: invalid response http code: got %d", common.ErrCurrencyFetchFailed, httpRes.StatusCode())
	}

	var body latestRatesResponse
	if err := json.Unmarshal(httpRes.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: error unmarshal response: %v", common.ErrCurrencyFetchFailed, err)
	}

	// Absent "rates" field means an empty mapping, not an error.
	rates := make([]models.CurrencyRate, 0, len(c.allowList))
	for _, code := range c.allowList {
		rate, ok := body.Rates[code]
		if !ok {
			continue
		}
		rates = append(rates, models.CurrencyRate{Currency: code, Rate: rate})
	}

	return rates, nil
}
