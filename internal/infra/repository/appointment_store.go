package repository

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

// AppointmentRepository adapts the generic record store to the schedule.
type AppointmentRepository struct {
	records store.Store[models.Appointment]
}

func NewAppointmentRepository(records store.Store[models.Appointment]) *AppointmentRepository {
	return &AppointmentRepository{records: records}
}

// --------------------------------------------------
// Day listing
// --------------------------------------------------

func (r *AppointmentRepository) ListForDate(
	ctx context.Context,
	owner string,
	date string,
) ([]models.Appointment, error) {
	return r.records.List(ctx, owner, store.Query{}.
		Eq("appointment_date", date).
		Asc("appointment_time"))
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentRepository) CreateAppointment(
	ctx context.Context,
	owner string,
	ap *models.Appointment,
) error {
	return r.records.Insert(ctx, owner, ap)
}

func (r *AppointmentRepository) UpdateAppointment(
	ctx context.Context,
	owner string,
	id string,
	fields map[string]any,
) (*models.Appointment, error) {

	ap, err := r.records.Update(ctx, owner, id, store.Patch(fields))
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.NotFoundError{Entity: "appointment", ID: id}
	}
	return ap, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentRepository)(nil)
