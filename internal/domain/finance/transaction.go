package finance

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindIncome, KindExpense:
		return k, nil
	case "receita":
		return KindIncome, nil
	case "despesa":
		return KindExpense, nil
	}
	return "", httperr.ErrValidation("kind")
}

var (
	ExpenseCategories = []string{"Despesa Pessoal", "Despesa do Salão", "Produtos", "Marketing", "Outras"}
	IncomeCategories  = []string{"Venda de Produto", "Serviço Extra", "Aluguel de Espaço", "Outras"}
)

// Entry is the form input for a new transaction. A future expense is
// dated by its due date and starts unpaid unless marked otherwise.
type Entry struct {
	Description string
	Category    string
	Kind        Kind
	Value       decimal.Decimal
	Date        string
	Future      bool
	DueDate     string
	Paid        bool
}

func (e Entry) Validate() error {
	var missing []string
	if strings.TrimSpace(e.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(e.Category) == "" {
		missing = append(missing, "category")
	}
	if !e.Value.IsPositive() {
		missing = append(missing, "value")
	}
	if e.Kind != KindIncome && e.Kind != KindExpense {
		missing = append(missing, "kind")
	}
	if e.Future {
		if _, err := time.Parse(timezone.DateLayout, e.DueDate); err != nil {
			missing = append(missing, "due_date")
		}
	} else if _, err := time.Parse(timezone.DateLayout, e.Date); err != nil {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return httperr.ErrValidation(missing...)
	}
	return nil
}

// Transaction builds the record for a validated entry.
func (e Entry) Transaction(id string, now time.Time) models.Transaction {
	tx := models.Transaction{
		ID:          id,
		Description: strings.TrimSpace(e.Description),
		Category:    e.Category,
		Kind:        string(e.Kind),
		Value:       e.Value.Round(2),
		Date:        e.Date,
		CreatedAt:   now,
	}
	if e.Future {
		paid := e.Paid
		tx.Date = e.DueDate
		tx.DueDate = e.DueDate
		tx.Paid = &paid
	}
	return tx
}

// FutureExpenses are unpaid expenses due after today, soonest first.
func FutureExpenses(txs []models.Transaction, now time.Time) []models.Transaction {
	today := timezone.DateString(now)

	var out []models.Transaction
	for _, tx := range txs {
		if Kind(tx.Kind) != KindExpense || tx.DueDate == "" {
			continue
		}
		if tx.Paid != nil && *tx.Paid {
			continue
		}
		if tx.DueDate > today {
			out = append(out, tx)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out
}

// SortNewest orders by date, most recent first.
func SortNewest(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })
}
