package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is an entry of the owner's catalog.
type Service struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:64;index;not null" json:"user_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Category    string          `gorm:"size:50" json:"category"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2)" json:"value"`
	DurationMin int             `json:"duration_min"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Service) RecordID() string         { return s.ID }
func (s *Service) AssignOwner(owner string) { s.UserID = owner }

// Item copies the service into a line item.
func (s Service) Item() ServiceItem {
	return ServiceItem{ID: s.ID, Name: s.Name, Price: s.Value}
}
