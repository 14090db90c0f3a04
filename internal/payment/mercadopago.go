// Package payment opens hosted checkouts for plan purchases.
package payment

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

type Checkout struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutItem is one priced line of a checkout.
type CheckoutItem struct {
	Title string
	Price decimal.Decimal
}

type Provider interface {
	CreateCheckout(ctx context.Context, reference string, item CheckoutItem) (*Checkout, error)
}

type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, reference string, item CheckoutItem) (*Checkout, error) {
	price, _ := item.Price.Float64()

	res, err := m.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			Title:      item.Title,
			Quantity:   1,
			UnitPrice:  price,
			CurrencyID: "BRL",
		}},
		ExternalReference: reference,
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Checkout{ID: res.ID, URL: res.InitPoint}, nil
}
