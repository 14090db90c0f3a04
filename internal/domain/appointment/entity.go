package appointment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

// Draft is the form state for creating or editing an appointment.
type Draft struct {
	ClientName   string
	ClientPhone  string
	Services     models.ServiceItems
	Date         string
	Time         string
	Observations string

	// Status is only applied by Edit, and only when set.
	Status *Status
}

// ===============================
// Domain Actions
// ===============================

// Validate lists the missing required fields in form order.
func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if len(d.Services) == 0 {
		missing = append(missing, "services")
	}
	if strings.TrimSpace(d.Time) == "" {
		missing = append(missing, "time")
	} else if _, err := timezone.NormalizeTime(d.Time); err != nil {
		missing = append(missing, "time")
	}
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	} else if _, err := time.Parse(timezone.DateLayout, d.Date); err != nil {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return httperr.ErrValidation(missing...)
	}
	return nil
}

func (d Draft) Total() decimal.Decimal {
	return d.Services.Total()
}

// NewAppointment builds the record a validated draft creates.
func NewAppointment(id string, d Draft) *models.Appointment {
	hhmm, _ := timezone.NormalizeTime(d.Time)
	return &models.Appointment{
		ID:              id,
		ClientName:      strings.TrimSpace(d.ClientName),
		ClientPhone:     strings.TrimSpace(d.ClientPhone),
		Services:        copyItems(d.Services),
		TotalValue:      d.Total(),
		AppointmentDate: d.Date,
		AppointmentTime: hhmm,
		Observations:    d.Observations,
		Status:          string(InitialStatus()),
	}
}

// OverwriteFields is the full replacement an edit writes. Status is only
// included when the draft carries one.
func OverwriteFields(d Draft) map[string]any {
	hhmm, _ := timezone.NormalizeTime(d.Time)
	fields := map[string]any{
		"client_name":      strings.TrimSpace(d.ClientName),
		"client_phone":     strings.TrimSpace(d.ClientPhone),
		"services":         copyItems(d.Services),
		"total_value":      d.Total(),
		"appointment_date": d.Date,
		"appointment_time": hhmm,
		"observations":     d.Observations,
	}
	if d.Status != nil {
		fields["status"] = string(*d.Status)
	}
	return fields
}

// DraftFrom returns a draft holding the appointment's current fields.
func DraftFrom(ap models.Appointment) Draft {
	return Draft{
		ClientName:   ap.ClientName,
		ClientPhone:  ap.ClientPhone,
		Services:     copyItems(ap.Services),
		Date:         ap.AppointmentDate,
		Time:         ap.AppointmentTime,
		Observations: ap.Observations,
	}
}

// IsEligibleForStatusAction: attendance can only be recorded once the
// appointment time has passed today, or when it was already recorded.
func IsEligibleForStatusAction(ap models.Appointment, now time.Time) bool {
	if StatusOf(ap.Status).Settled() {
		return true
	}

	if ap.AppointmentDate != timezone.DateString(now) {
		return false
	}

	hhmm, err := timezone.NormalizeTime(ap.AppointmentTime)
	if err != nil {
		return false
	}
	return hhmm <= now.Format(timezone.TimeLayout)
}

// CanReorder: rescheduled appointments stay in place.
func CanReorder(ap models.Appointment) error {
	if StatusOf(ap.Status) == StatusRescheduled {
		return httperr.ErrBusiness("reorder_locked")
	}
	return nil
}

func copyItems(items models.ServiceItems) models.ServiceItems {
	out := make(models.ServiceItems, len(items))
	copy(out, items)
	return out
}
