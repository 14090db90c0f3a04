package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// Create persists a new appointment with status scheduled and a total
// equal to the sum of its items, then reloads the selected day.
func (s *Schedule) Create(
	ctx context.Context,
	draft domain.Draft,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Persistência
	// --------------------------------------------------
	ap := domain.NewAppointment(s.newID(), draft)
	if err := s.repo.CreateAppointment(ctx, s.owner, ap); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria + recarga do dia
	// --------------------------------------------------
	s.audit.Dispatch(audit.Event{
		Owner:    s.owner,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	s.reload(ctx)
	return ap, nil
}
