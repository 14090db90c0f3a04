package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Records below live in the per-owner local store (JSON arrays), not in
// relational tables.

// Comanda is a closed bill. It is never reopened.
type Comanda struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"client_name"`
	Services      ServiceItems    `json:"services"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Note          string          `json:"note"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (c Comanda) RecordID() string { return c.ID }

type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Date        string          `json:"date"`
	DueDate     string          `json:"due_date,omitempty"`
	Paid        *bool           `json:"paid,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t Transaction) RecordID() string { return t.ID }

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (e Employee) RecordID() string { return e.ID }

// Preferences keeps per-owner interface settings.
type Preferences struct {
	ID       string `json:"id"`
	DarkMode bool   `json:"dark_mode"`
	LastView string `json:"last_view"`
}

func (p Preferences) RecordID() string { return p.ID }
