package models

import (
	"github.com/shopspring/decimal"
)

// Card holds a card number with its raw expense amounts. Derived values
// (last digits, totals, cashback) are computed on demand, never stored.
type Card struct {
	Number   string
	Expenses []decimal.Decimal
}

func (c Card) LastDigits() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

func (c Card) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Expenses {
		total = total.Add(e)
	}
	return total
}

// Cashback accrues 1 currency unit per 100 spent.
func (c Card) Cashback() decimal.Decimal {
	return c.TotalSpent().Div(decimal.NewFromInt(100))
}

type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

func (c Card) ToCardSummary() CardSummary {
	return CardSummary{
		LastDigits: c.LastDigits(),
		TotalSpent: c.TotalSpent().Round(2),
		Cashback:   c.Cashback().Round(2),
	}
}

// SampleCards is the built-in card list used when none is configured.
func SampleCards() []Card {
	return []Card{
		{Number: "1234567812345814", Expenses: []decimal.Decimal{decimal.NewFromInt(1200), decimal.NewFromInt(62)}},
		{Number: "9876543210987512", Expenses: []decimal.Decimal{decimal.NewFromFloat(7.94)}},
	}
}
