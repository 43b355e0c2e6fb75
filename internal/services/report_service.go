package services

import (
	"context"
	"fmt"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/clients/currency"
	"github.com/moneta-lab/go-finance-report/internal/clients/stocks"
	"github.com/moneta-lab/go-finance-report/internal/config"
	"github.com/moneta-lab/go-finance-report/internal/models"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock

type ReportService interface {
	// Greeting maps the hour of day to a greeting line.
	Greeting(ts time.Time) string

	// Generate builds the aggregate report for the given local timestamp.
	// A rates failure fails the whole report; stock quotes degrade
	// per symbol.
	Generate(ctx context.Context, ts time.Time) (models.Report, error)

	// Monthly builds the month-to-date expense report with rates and a
	// single quote. Fail-fast on any upstream failure.
	Monthly(ctx context.Context, date time.Time, symbol string) (models.MonthlyReport, error)
}

type report struct {
	conf           config.Config
	currencyClient currency.Client
	stocksClient   stocks.Client
	transactions   models.TransactionList
	cards          []models.Card
}

func NewReportService(
	conf config.Config,
	currencyClient currency.Client,
	stocksClient stocks.Client,
	transactions models.TransactionList,
	cards []models.Card,
) ReportService {
	return &report{
		conf:           conf,
		currencyClient: currencyClient,
		stocksClient:   stocksClient,
		transactions:   transactions,
		cards:          cards,
	}
}

func (s *report) Greeting(ts time.Time) string {
	switch hour := ts.Hour(); {
	case hour < 6:
		return "Good night"
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (s *report) Generate(ctx context.Context, ts time.Time) (models.Report, error) {
	cards := make([]models.CardSummary, 0, len(s.cards))
	for _, card := range s.cards {
		cards = append(cards, card.ToCardSummary())
	}

	top := s.transactions.TopByAmount(5)
	topOut := make([]models.TransactionOut, 0, len(top))
	for _, t := range top {
		topOut = append(topOut, t.ToTransactionOut())
	}

	rates, err := s.currencyClient.LatestRates(ctx)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to build report: %w", err)
	}

	stockPrices := s.stocksClient.QuotesBatch(ctx, s.conf.Report.StockSymbols)

	return models.Report{
		Greeting:        s.Greeting(ts),
		Cards:           cards,
		TopTransactions: topOut,
		CurrencyRates:   rates,
		StockPrices:     stockPrices,
	}, nil
}

func (s *report) Monthly(ctx context.Context, date time.Time, symbol string) (models.MonthlyReport, error) {
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	filtered := s.transactions.FilterByDateRange(monthStart, date)

	expenses := CalculateExpenses(filtered)

	rates, err := s.currencyClient.LatestRates(ctx)
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	quote, err := s.stocksClient.Quote(ctx, symbol)
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("failed to build monthly report: %w", err)
	}

	return models.MonthlyReport{
		Expenses:      expenses,
		CurrencyRates: rates,
		StockPrices:   []models.StockQuote{quote},
	}, nil
}
