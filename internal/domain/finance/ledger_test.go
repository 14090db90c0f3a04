package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

var brt = time.FixedZone("BRT", -3*60*60)

func tx(kind Kind, value int64, date string) models.Transaction {
	return models.Transaction{Kind: string(kind), Value: decimal.NewFromInt(value), Date: date}
}

func TestTodayIncomeLandsInEveryBucket(t *testing.T) {
	now := time.Date(2025, 3, 12, 18, 30, 0, 0, brt)

	s := Summarize([]models.Transaction{tx(KindIncome, 100, "2025-03-12")}, now)

	for name, b := range map[string]Bucket{"day": s.Day, "week": s.Week, "fortnight": s.Fortnight, "month": s.Month} {
		if !b.Income.Equal(decimal.NewFromInt(100)) {
			t.Errorf("%s income = %s", name, b.Income)
		}
	}
}

func TestWindowBoundaries(t *testing.T) {
	// Wednesday 2025-03-19: week from Sunday 16th, fortnight from the 16th.
	now := time.Date(2025, 3, 19, 9, 0, 0, 0, brt)

	txs := []models.Transaction{
		tx(KindIncome, 10, "2025-03-19"),  // today
		tx(KindIncome, 20, "2025-03-16"),  // sunday, fortnight start
		tx(KindExpense, 5, "2025-03-15"),  // saturday before, first fortnight
		tx(KindIncome, 40, "2025-03-01"),  // month start
		tx(KindIncome, 80, "2025-02-28"),  // previous month
		tx(KindIncome, 160, "2025-03-20"), // after today
		tx(KindIncome, 320, "not a date"),
	}

	s := Summarize(txs, now)

	check := func(name string, got Bucket, income, expense int64) {
		t.Helper()
		if !got.Income.Equal(decimal.NewFromInt(income)) || !got.Expense.Equal(decimal.NewFromInt(expense)) {
			t.Errorf("%s = %s/%s, want %d/%d", name, got.Income, got.Expense, income, expense)
		}
		if !got.Balance.Equal(got.Income.Sub(got.Expense)) {
			t.Errorf("%s balance = %s", name, got.Balance)
		}
	}

	check("day", s.Day, 10, 0)
	check("week", s.Week, 30, 0)
	check("fortnight", s.Fortnight, 30, 0)
	check("month", s.Month, 70, 5)
}

func TestFortnightFirstHalf(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, brt)
	_, _, fortnight, _ := Windows(now)
	if fortnight.Start.Day() != 1 {
		t.Errorf("fortnight start = %d", fortnight.Start.Day())
	}

	now = time.Date(2025, 3, 16, 9, 0, 0, 0, brt)
	_, _, fortnight, _ = Windows(now)
	if fortnight.Start.Day() != 16 {
		t.Errorf("fortnight start = %d", fortnight.Start.Day())
	}
}

func TestWeekStartsSunday(t *testing.T) {
	now := time.Date(2025, 3, 16, 9, 0, 0, 0, brt) // a Sunday
	_, week, _, _ := Windows(now)
	if week.Start.Day() != 16 {
		t.Errorf("week start = %v", week.Start)
	}
}

func TestEntryValidation(t *testing.T) {
	e := Entry{Description: "Aluguel", Category: "Despesa do Salão", Kind: KindExpense, Value: decimal.NewFromInt(900), Future: true}
	if err := e.Validate(); !httperr.IsValidation(err) {
		t.Fatalf("future expense without due date: %v", err)
	}

	e.DueDate = "2025-04-05"
	if err := e.Validate(); err != nil {
		t.Fatal(err)
	}
	rec := e.Transaction("t1", time.Now())
	if rec.Date != "2025-04-05" || rec.Paid == nil || *rec.Paid {
		t.Errorf("future expense record = %+v", rec)
	}

	zero := Entry{Description: "x", Category: "Outras", Kind: KindIncome, Date: "2025-03-01"}
	if err := zero.Validate(); !httperr.IsValidation(err) {
		t.Errorf("zero value accepted: %v", err)
	}
}

func TestFutureExpenses(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, brt)
	paid := true
	unpaid := false

	txs := []models.Transaction{
		{ID: "later", Kind: "expense", DueDate: "2025-04-01", Paid: &unpaid},
		{ID: "sooner", Kind: "expense", DueDate: "2025-03-20"},
		{ID: "paid", Kind: "expense", DueDate: "2025-03-30", Paid: &paid},
		{ID: "today", Kind: "expense", DueDate: "2025-03-10"},
		{ID: "income", Kind: "income", DueDate: "2025-03-30"},
	}

	got := FutureExpenses(txs, now)
	if len(got) != 2 || got[0].ID != "sooner" || got[1].ID != "later" {
		t.Errorf("future = %+v", got)
	}
}
