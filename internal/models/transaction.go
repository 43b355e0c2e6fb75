package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusExecuted TransactionStatus = "EXECUTED"
	TransactionStatusCanceled TransactionStatus = "CANCELED"
	TransactionStatusPending  TransactionStatus = "PENDING"
)

var ValidTransactionStatuses = []TransactionStatus{
	TransactionStatusExecuted,
	TransactionStatusCanceled,
	TransactionStatusPending,
}

func IsValidTransactionStatus(s string) bool {
	for _, status := range ValidTransactionStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Transaction is a single bank record. Negative amounts are expenses.
// Records are immutable once loaded; every list operation works on copies.
type Transaction struct {
	ID           int64
	State        string
	Date         time.Time
	Amount       decimal.Decimal
	CurrencyName string
	CurrencyCode string
	FromAccount  string
	ToAccount    string
	Category     string
	Description  string
}

const DateLayout = "2006-01-02"

type TransactionOut struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
}

func (t Transaction) ToTransactionOut() TransactionOut {
	return TransactionOut{
		Date:        t.Date.Format(DateLayout),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
	}
}

func mustDate(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// SampleTransactions is the built-in record set the report endpoints fall
// back to when no transactions file is configured.
func SampleTransactions() TransactionList {
	return TransactionList{
		{Date: mustDate("2020-05-01"), Amount: decimal.NewFromInt(-17319), Category: "Supermarkets", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2020-05-02"), Amount: decimal.NewFromInt(-3324), Category: "Fast food", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2020-05-03"), Amount: decimal.NewFromInt(-2289), Category: "Fuel", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2020-05-04"), Amount: decimal.NewFromInt(-1850), Category: "Entertainment", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2020-05-10"), Amount: decimal.NewFromInt(33000), Category: "Top-up BANK007", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2020-05-15"), Amount: decimal.NewFromInt(1242), Category: "Interest on balance", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2021-12-21"), Amount: decimal.NewFromFloat(1198.23), Category: "Transfers", Description: "Credit card transfer TP 10.2 RUR", State: "EXECUTED", CurrencyCode: "RUB"},
		{Date: mustDate("2021-12-20"), Amount: decimal.NewFromFloat(829.00), Category: "Supermarkets", Description: "Lenta", State: "EXECUTED", CurrencyCode: "RUB"},
	}
}
