package finance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/finance"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

type Overview struct {
	Summary        domain.Summary       `json:"summary"`
	Transactions   []models.Transaction `json:"transactions"`
	FutureExpenses []models.Transaction `json:"future_expenses"`
}

// Locator resolves the studio timezone of an owner.
type Locator interface {
	Location(ctx context.Context, owner string) *time.Location
}

// FixedZone puts every owner in the same timezone.
type FixedZone struct {
	Loc *time.Location
}

func (z FixedZone) Location(context.Context, string) *time.Location { return z.Loc }

// Ledger is the owner's transaction list in the local store.
type Ledger struct {
	records store.Store[models.Transaction]
	audit   *audit.Dispatcher
	zones   Locator
	now     func() time.Time
	newID   func() string
}

func NewLedger(
	records store.Store[models.Transaction],
	auditor *audit.Dispatcher,
	zones Locator,
) *Ledger {
	return &Ledger{
		records: records,
		audit:   auditor,
		zones:   zones,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// clock is now in the owner's studio timezone.
func (l *Ledger) clock(ctx context.Context, owner string) time.Time {
	return l.now().In(l.zones.Location(ctx, owner))
}

func (l *Ledger) List(ctx context.Context, owner string) ([]models.Transaction, error) {
	txs, err := l.records.List(ctx, owner, store.Query{})
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	domain.SortNewest(txs)
	return txs, nil
}

func (l *Ledger) Overview(ctx context.Context, owner string) (*Overview, error) {
	txs, err := l.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	now := l.clock(ctx, owner)
	return &Overview{
		Summary:        domain.Summarize(txs, now),
		Transactions:   txs,
		FutureExpenses: domain.FutureExpenses(txs, now),
	}, nil
}

func (l *Ledger) Add(ctx context.Context, owner string, entry domain.Entry) (*models.Transaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	tx := entry.Transaction(l.newID(), l.clock(ctx, owner))
	if err := l.records.Insert(ctx, owner, &tx); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	return &tx, nil
}

func (l *Ledger) MarkPaid(ctx context.Context, owner, id string, paid bool) (*models.Transaction, error) {
	tx, err := l.records.Update(ctx, owner, id, store.Patch{"paid": paid})
	if err != nil {
		return nil, l.writeErr(err, id)
	}
	return tx, nil
}

func (l *Ledger) Delete(ctx context.Context, owner, id string) error {
	if err := l.records.Delete(ctx, owner, id); err != nil {
		return l.writeErr(err, id)
	}

	l.audit.Dispatch(audit.Event{
		Owner:    owner,
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: id,
	})
	return nil
}

func (l *Ledger) writeErr(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return httperr.NotFoundError{Entity: "transaction", ID: id}
	}
	return httperr.PersistenceError{Err: err}
}
