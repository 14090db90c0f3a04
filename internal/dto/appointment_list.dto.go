package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

type AppointmentListDTO struct {
	ID           string              `json:"id"`
	ClientName   string              `json:"client_name"`
	ClientPhone  string              `json:"client_phone"`
	Services     models.ServiceItems `json:"services"`
	TotalValue   decimal.Decimal     `json:"total_value"`
	Date         string              `json:"appointment_date"`
	Time         string              `json:"appointment_time"`
	Observations string              `json:"observations"`
	Status       string              `json:"status"`

	// StatusActions tells whether present/absent/reschedule controls apply.
	StatusActions bool `json:"status_actions"`
	Reorderable   bool `json:"reorderable"`
}

type DayTotalsDTO struct {
	Count    int             `json:"count"`
	Sum      decimal.Decimal `json:"sum"`
	Earnings decimal.Decimal `json:"earnings"`
	Attended int             `json:"attended"`
}

type DayDTO struct {
	Date         string               `json:"date"`
	Loading      bool                 `json:"loading"`
	Appointments []AppointmentListDTO `json:"appointments"`
	Totals       DayTotalsDTO         `json:"totals"`
}
