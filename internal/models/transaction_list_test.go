package models

import (
	"testing"

	"github.com/moneta-lab/go-finance-report/internal/common"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransactions() TransactionList {
	return TransactionList{
		{ID: 1, State: "EXECUTED", Date: mustDate("2020-05-03"), Amount: decimal.NewFromInt(-100), CurrencyCode: "RUB", Description: "Lenta supermarket"},
		{ID: 2, State: "CANCELED", Date: mustDate("2020-05-01"), Amount: decimal.NewFromInt(200), CurrencyCode: "USD", Description: "Refund"},
		{ID: 3, State: "executed", Date: mustDate("2020-05-02"), Amount: decimal.NewFromInt(300), CurrencyCode: "RUB"},
		{ID: 4, State: "PENDING", Date: mustDate("2020-05-03"), Amount: decimal.NewFromInt(300), CurrencyCode: "RUB", Description: "Card transfer"},
	}
}

func Test_TransactionList_FilterByStatus(t *testing.T) {
	list := testTransactions()

	got := list.FilterByStatus("EXECUTED")
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Empty(t, list.FilterByStatus("UNKNOWN"))

	// receiver stays untouched
	assert.Len(t, list, 4)
}

func Test_TransactionList_FilterByDateRange(t *testing.T) {
	list := testTransactions()

	got := list.FilterByDateRange(mustDate("2020-05-02"), mustDate("2020-05-03"))
	require.Len(t, got, 3)
	for _, tx := range got {
		assert.False(t, tx.Date.Before(mustDate("2020-05-02")))
		assert.False(t, tx.Date.After(mustDate("2020-05-03")))
	}
}

func Test_TransactionList_FilterByCurrency(t *testing.T) {
	list := testTransactions()
	seq := list.FilterByCurrency("RUB")

	var ids []int64
	for tx := range seq {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)

	// the sequence restarts from the beginning on every range
	var first int64
	for tx := range seq {
		first = tx.ID
		break
	}
	assert.Equal(t, int64(1), first)
}

func Test_TransactionList_FilterByDescription(t *testing.T) {
	list := testTransactions()

	got, err := list.FilterByDescription("transfer")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)

	// records without a description never match
	got, err = list.FilterByDescription("")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = list.FilterByDescription("(")
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}

func Test_TransactionList_SortByDate(t *testing.T) {
	list := testTransactions()

	asc := list.SortByDate(false)
	require.Len(t, asc, 4)
	assert.True(t, asc[0].Date.Before(asc[len(asc)-1].Date))

	desc := list.SortByDate(true)
	assert.True(t, desc[0].Date.After(desc[len(desc)-1].Date))

	// equal dates keep input order
	assert.Equal(t, int64(1), desc[0].ID)
	assert.Equal(t, int64(4), desc[1].ID)

	// receiver order is preserved
	assert.Equal(t, int64(1), list[0].ID)
}

func Test_TransactionList_TopByAmount(t *testing.T) {
	list := testTransactions()

	got := list.TopByAmount(2)
	require.Len(t, got, 2)
	// stable: ties keep input order
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	all := list.TopByAmount(10)
	assert.Len(t, all, 4)

	// selecting twice yields the same ordered list
	assert.Equal(t, got, list.TopByAmount(2))
	assert.Equal(t, got, got.TopByAmount(2))
}

func Test_Transaction_ToTransactionOut(t *testing.T) {
	tx := Transaction{
		Date:        mustDate("2021-12-20"),
		Amount:      decimal.RequireFromString("829.00"),
		Category:    "Supermarkets",
		Description: "Lenta",
	}

	out := tx.ToTransactionOut()
	assert.Equal(t, "2021-12-20", out.Date)
	assert.Equal(t, "Supermarkets", out.Category)
	assert.Equal(t, "Lenta", out.Description)
	assert.True(t, decimal.RequireFromString("829").Equal(out.Amount))
}

func Test_IsValidTransactionStatus(t *testing.T) {
	assert.True(t, IsValidTransactionStatus("EXECUTED"))
	assert.True(t, IsValidTransactionStatus("CANCELED"))
	assert.True(t, IsValidTransactionStatus("PENDING"))
	assert.False(t, IsValidTransactionStatus("executed"))
	assert.False(t, IsValidTransactionStatus(""))
}

func Test_Card_Summary(t *testing.T) {
	card := Card{
		Number:   "1234567812345814",
		Expenses: []decimal.Decimal{decimal.NewFromInt(1200), decimal.NewFromInt(62)},
	}

	summary := card.ToCardSummary()
	assert.Equal(t, "5814", summary.LastDigits)
	assert.True(t, decimal.NewFromInt(1262).Equal(summary.TotalSpent))
	assert.True(t, decimal.RequireFromString("12.62").Equal(summary.Cashback))

	short := Card{Number: "42"}
	assert.Equal(t, "42", short.LastDigits())
	assert.True(t, short.TotalSpent().IsZero())
}
