package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ServiceItem is a catalog service copied by value into an appointment
// or a bill. Later catalog edits never reach it.
type ServiceItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ServiceItems []ServiceItem

func (s ServiceItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s {
		total = total.Add(it.Price)
	}
	return total
}

// Value stores the items as a JSON array.
func (s ServiceItems) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *ServiceItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = ServiceItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("service items: unsupported type %T", src)
	}
	return json.Unmarshal(raw, s)
}

// StringList is a JSON-encoded list of strings in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("string list: unsupported type %T", src)
	}
	return json.Unmarshal(raw, l)
}
