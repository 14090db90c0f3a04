package comanda

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

const StatusClosed = "closed"

// DiscountStep is the increment of the +/- discount buttons.
var DiscountStep = decimal.NewFromInt(1)

// Draft is an open bill. Discount is never negative but may exceed the
// subtotal, which gives a negative total.
type Draft struct {
	ClientName string
	Services   models.ServiceItems
	Discount   decimal.Decimal
	Payment    PaymentMethod
	Note       string

	newID func() string
}

func NewDraft(newID func() string) *Draft {
	return &Draft{Discount: decimal.Zero, newID: newID}
}

// AddService appends a copy of svc under a fresh id; the same service can
// be added more than once.
func (d *Draft) AddService(svc models.ServiceItem) models.ServiceItem {
	svc.ID = d.newID()
	d.Services = append(d.Services, svc)
	return svc
}

func (d *Draft) RemoveService(id string) bool {
	for i, s := range d.Services {
		if s.ID == id {
			d.Services = append(d.Services[:i:i], d.Services[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) AdjustDiscount(delta decimal.Decimal) {
	d.SetDiscount(d.Discount.Add(delta))
}

func (d *Draft) SetDiscount(v decimal.Decimal) {
	if v.IsNegative() {
		v = decimal.Zero
	}
	d.Discount = v.Round(2)
}

func (d *Draft) Subtotal() decimal.Decimal {
	return d.Services.Total()
}

func (d *Draft) Total() decimal.Decimal {
	return d.Subtotal().Sub(d.Discount)
}

func (d *Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if len(d.Services) == 0 {
		missing = append(missing, "services")
	}
	if d.Payment == "" {
		missing = append(missing, "payment_method")
	}
	if len(missing) > 0 {
		return httperr.ErrValidation(missing...)
	}
	return nil
}

// Build returns the closed record without touching the draft.
func (d *Draft) Build(now time.Time) (models.Comanda, error) {
	if err := d.Validate(); err != nil {
		return models.Comanda{}, err
	}

	items := make(models.ServiceItems, len(d.Services))
	copy(items, d.Services)

	return models.Comanda{
		ID:            d.newID(),
		ClientName:    strings.TrimSpace(d.ClientName),
		Services:      items,
		Subtotal:      d.Subtotal(),
		Discount:      d.Discount,
		Total:         d.Total(),
		PaymentMethod: string(d.Payment),
		Note:          d.Note,
		Status:        StatusClosed,
		CreatedAt:     now,
	}, nil
}

// Close builds the closed record and resets the draft.
func (d *Draft) Close(now time.Time) (models.Comanda, error) {
	c, err := d.Build(now)
	if err != nil {
		return c, err
	}
	d.Reset()
	return c, nil
}

func (d *Draft) Reset() {
	d.ClientName = ""
	d.Services = nil
	d.Discount = decimal.Zero
	d.Payment = ""
	d.Note = ""
}
