package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// ChangeStatus records attendance (present or absent). Only the status
// column is written; the loaded row is replaced after the store confirms.
func (s *Schedule) ChangeStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) (*models.Appointment, error) {

	if err := domain.CanChangeStatus(status); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateAppointment(ctx, s.owner, id, map[string]any{
		"status": string(status),
	})
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, err
		}
		return nil, httperr.PersistenceError{Err: err}
	}

	s.mu.Lock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.audit.Dispatch(audit.Event{
		Owner:    s.owner,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: id,
		Metadata: map[string]string{"status": string(status)},
	})

	return updated, nil
}
