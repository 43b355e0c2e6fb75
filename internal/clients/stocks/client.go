package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/common"
	"github.com/moneta-lab/go-finance-report/internal/common/log"
	"github.com/moneta-lab/go-finance-report/internal/common/metrics"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var logMessage = "[STOCKS-CLIENT]"

const serviceName = "stock_api"

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	// Quote fetches the latest daily closing price for one symbol.
	// Fail-fast: any classification failure is returned to the caller.
	Quote(ctx context.Context, symbol string) (models.StockQuote, error)

	// QuotesBatch fetches quotes for all symbols concurrently. Each
	// symbol's outcome is isolated: one failure becomes an error entry in
	// its slot without affecting the others.
	QuotesBatch(ctx context.Context, symbols []string) []models.StockPriceResult
}

type client struct {
	baseURL        string
	apiKey         string
	maxConcurrency int
	httpClient     *resty.Client
	metrics        metrics.Metrics
}

func New(configuration config.HTTPConfiguration, maxConcurrency int, metrics metrics.Metrics) Client {
	restyClient := resty.New().
		SetRetryCount(0).
		SetTimeout(configuration.Timeout)

	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return client{
		baseURL:        configuration.BaseURL,
		apiKey:         configuration.APIKey,
		maxConcurrency: maxConcurrency,
		httpClient:     restyClient,
		metrics:        metrics,
	}
}

type timeSeriesEntry struct {
	Close decimal.Decimal `json:"4. close"`
}

type timeSeriesResponse struct {
	TimeSeries map[string]timeSeriesEntry `json:"Time Series (Daily)"`
}

type providerError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c client) Quote(ctx context.Context, symbol string) (res models.StockQuote, err error) {
	if c.apiKey == "" || c.baseURL == "" {
		return models.StockQuote{}, common.ErrStockConfiguration
	}

	startTime := time.Now()
	url := fmt.Sprintf("%s/query", c.baseURL)

	logFields := []log.Field{
		log.String("url", url),
		log.String("symbol", symbol),
	}

	defer func() {
		if err != nil {
			log.Warn(ctx, logMessage, append(logFields, log.Err(err))...)
		}
	}()

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "TIME_SERIES_DAILY",
			"symbol":   symbol,
			"apikey":   c.apiKey,
		}).
		Get(url)
	if err != nil {
		return models.StockQuote{}, fmt.Errorf("%w: %v", common.ErrStockNetwork, err)
	}

	if c.metrics != nil {
		c.metrics.GetHTTPClientPrometheus().
			Record(time.Since(startTime), serviceName, httpRes.Request.Method, url, httpRes.StatusCode())
	}

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() > 299 {
		if httpRes.StatusCode() == http.StatusNotFound {
			return models.StockQuote{}, fmt.Errorf("%w: symbol %q", common.ErrStockNotFound, symbol)
		}

		return models.StockQuote{}, common.RequestError{
			StatusCode: httpRes.StatusCode(),
			Message:    parseProviderMessage(httpRes.Body()),
		}
	}

	// Wrong-page detection: some providers return HTML error pages with a
	// 200 status.
	if !strings.Contains(httpRes.Header().Get("Content-Type"), "application/json") {
		return models.StockQuote{}, fmt.Errorf("%w: got content type %q", common.ErrStockParse, httpRes.Header().Get("Content-Type"))
	}

	var body timeSeriesResponse
	if err := json.Unmarshal(httpRes.Body(), &body); err != nil {
		return models.StockQuote{}, fmt.Errorf("%w: error unmarshal response: %v", common.ErrStockParse, err)
	}

	if len(body.TimeSeries) == 0 {
		return models.StockQuote{}, fmt.Errorf("%w: no data for symbol %q", common.ErrStockNotFound, symbol)
	}

	// JSON object key order is no contract; pick the most recent trading
	// date explicitly. YYYY-MM-DD keys order correctly as strings.
	var latestDate string
	for date := range body.TimeSeries {
		if date > latestDate {
			latestDate = date
		}
	}

	return models.StockQuote{
		Stock: symbol,
		Price: body.TimeSeries[latestDate].Close,
	}, nil
}

func (c client) QuotesBatch(ctx context.Context, symbols []string) []models.StockPriceResult {
	results := make([]models.StockPriceResult, len(symbols))

	g := new(errgroup.Group)
	g.SetLimit(c.maxConcurrency)

	for i, symbol := range symbols {
		g.Go(func() error {
			quote, err := c.Quote(ctx, symbol)
			if err != nil {
				results[i] = models.StockPriceResult{Stock: symbol, Error: err.Error()}
				return nil
			}

			price := quote.Price
			results[i] = models.StockPriceResult{Stock: symbol, Price: &price}
			return nil
		})
	}

	// Each worker owns its own result slot; merge happens at the join.
	_ = g.Wait()

	return results
}

func parseProviderMessage(body []byte) string {
	var pe providerError
	if err := json.Unmarshal(body, &pe); err == nil {
		if pe.Error != "" {
			return pe.Error
		}
		if pe.Message != "" {
			return pe.Message
		}
	}
	return strings.TrimSpace(string(body))
}
