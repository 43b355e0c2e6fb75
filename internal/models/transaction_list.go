package models

import (
	"fmt"
	"iter"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/moneta-lab/go-finance-report/internal/common"
)

// TransactionList carries the pure in-memory filter and sort operations.
// Every operation returns a fresh list; the receiver is never mutated.
type TransactionList []Transaction

// FilterByStatus keeps records whose state matches case-insensitively.
// An unknown status simply yields an empty result.
func (l TransactionList) FilterByStatus(status string) TransactionList {
	out := make(TransactionList, 0, len(l))
	for _, t := range l {
		if strings.EqualFold(t.State, status) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDateRange keeps records with start <= date <= end.
func (l TransactionList) FilterByDateRange(start, end time.Time) TransactionList {
	out := make(TransactionList, 0, len(l))
	for _, t := range l {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCurrency returns a restartable lazy sequence of records in the
// given currency.
func (l TransactionList) FilterByCurrency(code string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range l {
			if t.CurrencyCode != code {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FilterByDescription keeps records whose description matches the pattern,
// case-insensitively. Records without a description are skipped.
func (l TransactionList) FilterByDescription(pattern string) (TransactionList, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid description pattern %q: %v", common.ErrInvalidArgument, pattern, err)
	}

	out := make(TransactionList, 0, len(l))
	for _, t := range l {
		if t.Description == "" {
			continue
		}
		if re.MatchString(t.Description) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SortByDate returns a stably sorted copy.
func (l TransactionList) SortByDate(descending bool) TransactionList {
	out := make(TransactionList, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// TopByAmount returns the n highest records by amount, descending, with
// ties keeping their original order.
func (l TransactionList) TopByAmount(n int) TransactionList {
	out := make(TransactionList, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
