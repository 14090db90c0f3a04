package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

type Repository interface {
	// -------- Day listing --------
	ListForDate(
		ctx context.Context,
		owner string,
		date string,
	) ([]models.Appointment, error)

	// -------- Writes --------
	CreateAppointment(
		ctx context.Context,
		owner string,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		owner string,
		id string,
		fields map[string]any,
	) (*models.Appointment, error)
}
