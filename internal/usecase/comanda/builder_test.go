package comanda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

func newBuilder(t *testing.T) (*Builder, *store.LocalStore[models.Comanda]) {
	t.Helper()
	kv := store.NewMemoryKV()

	catalog := store.NewLocalStore[models.Service](kv, "services")
	for _, svc := range []models.Service{
		{ID: "escova", Name: "Escova", Value: decimal.NewFromInt(20)},
		{ID: "unha", Name: "Unha", Value: decimal.NewFromInt(15)},
	} {
		svc := svc
		if err := catalog.Insert(context.Background(), "o", &svc); err != nil {
			t.Fatal(err)
		}
	}

	history := store.NewLocalStore[models.Comanda](kv, "comandas")
	return NewBuilder("o", catalog, history, nil), history
}

func strPtr(s string) *string { return &s }

func TestBuilderCloseAppendsHistory(t *testing.T) {
	b, _ := newBuilder(t)
	ctx := context.Background()

	discount := decimal.NewFromInt(10)
	if _, err := b.Update(DraftUpdate{ClientName: strPtr("Ana"), PaymentMethod: strPtr("PIX"), Discount: &discount}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddService(ctx, "escova"); err != nil {
		t.Fatal(err)
	}
	view, err := b.AddService(ctx, "unha")
	if err != nil {
		t.Fatal(err)
	}
	if !view.Subtotal.Equal(decimal.NewFromInt(35)) || !view.Total.Equal(decimal.NewFromInt(25)) {
		t.Errorf("subtotal/total = %s/%s", view.Subtotal, view.Total)
	}

	closed, err := b.Close(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !closed.Total.Equal(decimal.NewFromInt(25)) || closed.PaymentMethod != "pix" {
		t.Errorf("closed = %+v", closed)
	}
	if b.View().ClientName != "" {
		t.Error("draft not reset")
	}

	b.now = func() time.Time { return closed.CreatedAt.Add(time.Minute) }
	b.Update(DraftUpdate{ClientName: strPtr("Bia"), PaymentMethod: strPtr("cash")})
	b.AddService(ctx, "unha")
	if _, err := b.Close(ctx); err != nil {
		t.Fatal(err)
	}

	hist, err := b.History(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 || hist[0].ClientName != "Bia" {
		t.Errorf("history not newest first: %+v", hist)
	}
}

func TestBuilderAddUnknownService(t *testing.T) {
	b, _ := newBuilder(t)
	if _, err := b.AddService(context.Background(), "nope"); !httperr.IsNotFound(err) {
		t.Errorf("err = %v", err)
	}
}

type rejectingHistory struct {
	store.Store[models.Comanda]
}

func (rejectingHistory) Insert(context.Context, string, *models.Comanda) error {
	return errors.New("quota exceeded")
}

func TestBuilderFailedCloseKeepsDraft(t *testing.T) {
	b, _ := newBuilder(t)
	b.history = rejectingHistory{}
	ctx := context.Background()

	b.Update(DraftUpdate{ClientName: strPtr("Ana"), PaymentMethod: strPtr("debit")})
	b.AddService(ctx, "escova")

	_, err := b.Close(ctx)
	var pe httperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v", err)
	}
	if v := b.View(); v.ClientName != "Ana" || len(v.Services) != 1 {
		t.Errorf("draft lost: %+v", v)
	}
}

func TestBuilderAdjustDiscount(t *testing.T) {
	b, _ := newBuilder(t)
	if v := b.AdjustDiscount(-3); !v.Discount.IsZero() {
		t.Errorf("discount = %s", v.Discount)
	}
	if v := b.AdjustDiscount(5); !v.Discount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("discount = %s", v.Discount)
	}
}
