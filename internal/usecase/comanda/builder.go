package comanda

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/comanda"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

// ======================================================
// STATE
// ======================================================

type DraftView struct {
	ClientName    string              `json:"client_name"`
	Services      models.ServiceItems `json:"services"`
	Discount      decimal.Decimal     `json:"discount"`
	PaymentMethod string              `json:"payment_method"`
	Note          string              `json:"note"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Total         decimal.Decimal     `json:"total"`
}

// DraftUpdate carries the fields a form submit may change; nil leaves the
// field as it is.
type DraftUpdate struct {
	ClientName    *string
	PaymentMethod *string
	Note          *string
	Discount      *decimal.Decimal
}

// Builder owns one owner's open bill and closes it into the history.
type Builder struct {
	owner   string
	catalog store.Store[models.Service]
	history store.Store[models.Comanda]
	audit   *audit.Dispatcher
	now     func() time.Time

	mu    sync.Mutex
	draft *domain.Draft
}

func NewBuilder(
	owner string,
	catalog store.Store[models.Service],
	history store.Store[models.Comanda],
	auditor *audit.Dispatcher,
) *Builder {
	return &Builder{
		owner:   owner,
		catalog: catalog,
		history: history,
		audit:   auditor,
		now:     time.Now,
		draft:   domain.NewDraft(uuid.NewString),
	}
}

func (b *Builder) View() DraftView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewLocked()
}

func (b *Builder) viewLocked() DraftView {
	d := b.draft
	return DraftView{
		ClientName:    d.ClientName,
		Services:      append(models.ServiceItems{}, d.Services...),
		Discount:      d.Discount,
		PaymentMethod: string(d.Payment),
		Note:          d.Note,
		Subtotal:      d.Subtotal(),
		Total:         d.Total(),
	}
}

// ======================================================
// DRAFT EDITS
// ======================================================

func (b *Builder) Update(in DraftUpdate) (DraftView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if in.PaymentMethod != nil {
		if *in.PaymentMethod == "" {
			b.draft.Payment = ""
		} else {
			pm, err := domain.ParsePaymentMethod(*in.PaymentMethod)
			if err != nil {
				return b.viewLocked(), err
			}
			b.draft.Payment = pm
		}
	}
	if in.ClientName != nil {
		b.draft.ClientName = *in.ClientName
	}
	if in.Note != nil {
		b.draft.Note = *in.Note
	}
	if in.Discount != nil {
		b.draft.SetDiscount(*in.Discount)
	}
	return b.viewLocked(), nil
}

// AddService copies a catalog service into the bill.
func (b *Builder) AddService(ctx context.Context, serviceID string) (DraftView, error) {
	rows, err := b.catalog.List(ctx, b.owner, store.Query{}.Eq("id", serviceID))
	if err != nil {
		return b.View(), httperr.FetchError{Err: err}
	}
	if len(rows) == 0 {
		return b.View(), httperr.NotFoundError{Entity: "service", ID: serviceID}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft.AddService(rows[0].Item())
	return b.viewLocked(), nil
}

func (b *Builder) RemoveService(itemID string) (DraftView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.draft.RemoveService(itemID) {
		return b.viewLocked(), httperr.NotFoundError{Entity: "comanda_item", ID: itemID}
	}
	return b.viewLocked(), nil
}

// AdjustDiscount applies steps increments of DiscountStep (negative to
// decrease).
func (b *Builder) AdjustDiscount(steps int64) DraftView {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draft.AdjustDiscount(domain.DiscountStep.Mul(decimal.NewFromInt(steps)))
	return b.viewLocked()
}

func (b *Builder) Reset() DraftView {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draft.Reset()
	return b.viewLocked()
}

// ======================================================
// CLOSE
// ======================================================

// Close validates the draft, appends the closed bill to the history and
// resets the draft. A failed write keeps the draft as it was.
func (b *Builder) Close(ctx context.Context) (*models.Comanda, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed, err := b.draft.Build(b.now())
	if err != nil {
		return nil, err
	}

	if err := b.history.Insert(ctx, b.owner, &closed); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	b.draft.Reset()

	b.audit.Dispatch(audit.Event{
		Owner:    b.owner,
		Action:   "comanda_closed",
		Entity:   "comanda",
		EntityID: closed.ID,
		Metadata: map[string]string{"total": closed.Total.StringFixed(2)},
	})

	return &closed, nil
}

// History lists closed bills, newest first.
func (b *Builder) History(ctx context.Context) ([]models.Comanda, error) {
	rows, err := b.history.List(ctx, b.owner, store.Query{}.Descending("created_at"))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	return rows, nil
}
