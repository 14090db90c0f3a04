// Package finance buckets the ledger into day, week, fortnight and month
// sums.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

type Bucket struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

type Summary struct {
	Day       Bucket `json:"day"`
	Week      Bucket `json:"week"`
	Fortnight Bucket `json:"fortnight"`
	Month     Bucket `json:"month"`
}

// Window is an inclusive civil date range.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Windows returns the four ranges for now. Every one of them ends today:
// the week starts on Sunday, the fortnight on the 1st (days 1-15) or the
// 16th.
func Windows(now time.Time) (day, week, fortnight, month Window) {
	today := timezone.StartOfDay(now)

	day = Window{Start: today, End: today}
	week = Window{Start: today.AddDate(0, 0, -int(today.Weekday())), End: today}

	fortnightStart := 1
	if today.Day() > 15 {
		fortnightStart = 16
	}
	fortnight = Window{
		Start: time.Date(today.Year(), today.Month(), fortnightStart, 0, 0, 0, 0, today.Location()),
		End:   today,
	}

	month = Window{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
		End:   today,
	}
	return day, week, fortnight, month
}

// Summarize sums income and expense per window. Membership is decided by
// the transaction date only; dates that do not parse are skipped.
func Summarize(txs []models.Transaction, now time.Time) Summary {
	day, week, fortnight, month := Windows(now)
	s := Summary{
		Day:       zeroBucket(),
		Week:      zeroBucket(),
		Fortnight: zeroBucket(),
		Month:     zeroBucket(),
	}

	for _, tx := range txs {
		date, err := timezone.ParseDate(tx.Date, now.Location())
		if err != nil {
			continue
		}
		kind := Kind(tx.Kind)

		for _, pair := range []struct {
			w Window
			b *Bucket
		}{
			{day, &s.Day},
			{week, &s.Week},
			{fortnight, &s.Fortnight},
			{month, &s.Month},
		} {
			if pair.w.Contains(date) {
				pair.b.add(kind, tx.Value)
			}
		}
	}

	return s
}

func zeroBucket() Bucket {
	return Bucket{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
}

func (b *Bucket) add(kind Kind, v decimal.Decimal) {
	switch kind {
	case KindIncome:
		b.Income = b.Income.Add(v)
	case KindExpense:
		b.Expense = b.Expense.Add(v)
	default:
		return
	}
	b.Balance = b.Income.Sub(b.Expense)
}
