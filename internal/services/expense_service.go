package services

import (
	"sort"

	"github.com/moneta-lab/go-finance-report/internal/models"

	"github.com/shopspring/decimal"
)

// mainCategoryCount is how many categories are listed before the rest is
// folded into "Other".
const mainCategoryCount = 6

// OtherCategory is the synthetic bucket for everything beyond the main
// categories.
const OtherCategory = "Other"

// CalculateExpenses buckets expenses (negative amounts) per category and
// ranks them. Deterministic for a given input order: categories keep
// first-seen order, the ranking sort is stable.
func CalculateExpenses(transactions models.TransactionList) models.ExpenseSummary {
	total := decimal.Zero
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}

		expense := t.Amount.Neg()
		total = total.Add(expense)

		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(expense)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]].GreaterThan(sums[order[j]])
	})

	main := make([]models.CategoryExpense, 0, mainCategoryCount+1)
	other := decimal.Zero
	for i, category := range order {
		if i < mainCategoryCount {
			main = append(main, models.CategoryExpense{Category: category, Amount: sums[category]})
			continue
		}
		other = other.Add(sums[category])
	}
	main = append(main, models.CategoryExpense{Category: OtherCategory, Amount: other})

	return models.ExpenseSummary{
		TotalAmount: total,
		Main:        main,
	}
}
