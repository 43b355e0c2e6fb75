package common

import "github.com/shopspring/decimal"

// NewDecimalFromString converts a string to a decimal.Decimal pointer.
// It parses the input string and returns a pointer to the decimal value,
// along with any parsing error. If the input string is empty, it returns nil.
func NewDecimalFromString(data string) (*decimal.Decimal, error) {
	if data != "" {
		amount, err := decimal.NewFromString(data)
		if err != nil {
			return nil, err
		}
		return &amount, nil
	}
	return nil, nil
}

// RoundMoney rounds a monetary amount to 2 decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
