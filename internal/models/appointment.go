package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:64;index;not null" json:"user_id"`

	ClientName  string `gorm:"size:120;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Services   ServiceItems    `gorm:"type:text" json:"services"`
	TotalValue decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_value"`

	AppointmentDate string `gorm:"size:10;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	Observations string `gorm:"type:text" json:"observations"`
	Status       string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Appointment) RecordID() string         { return a.ID }
func (a *Appointment) AssignOwner(owner string) { a.UserID = owner }
