package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Money values go over the wire as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

type StockQuote struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// StockPriceResult is one slot of a batch quote fetch: either a price or
// the error that prevented it, never both.
type StockPriceResult struct {
	Stock string           `json:"stock"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Error string           `json:"error,omitempty"`
}

// Report is the aggregate payload of /api/data. Built fresh per request,
// never persisted.
type Report struct {
	Greeting        string             `json:"greeting"`
	Cards           []CardSummary      `json:"cards"`
	TopTransactions []TransactionOut   `json:"top_transactions"`
	CurrencyRates   []CurrencyRate     `json:"currency_rates"`
	StockPrices     []StockPriceResult `json:"stock_prices"`
}

type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type ExpenseSummary struct {
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Main        []CategoryExpense `json:"main"`
}

// MonthlyReport is the month-to-date view: expenses from the 1st of the
// month through the requested date, plus rates and a single quote.
type MonthlyReport struct {
	Expenses      ExpenseSummary `json:"expenses"`
	CurrencyRates []CurrencyRate `json:"currency_rates"`
	StockPrices   []StockQuote   `json:"stock_prices"`
}

type GetReportDataRequest struct {
	DateTime string `query:"date_time" json:"date_time" validate:"required,datetime=2006-01-02 15:04:05"`
}
