package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// Edit overwrites every mutable field of id with the draft. The status
// only changes when the draft carries one.
func (s *Schedule) Edit(
	ctx context.Context,
	id string,
	draft domain.Draft,
) (*models.Appointment, error) {

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Status != nil {
		st, err := domain.ParseStatus(string(*draft.Status))
		if err != nil {
			return nil, err
		}
		draft.Status = &st
	}

	updated, err := s.repo.UpdateAppointment(ctx, s.owner, id, domain.OverwriteFields(draft))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, err
		}
		return nil, httperr.PersistenceError{Err: err}
	}

	s.audit.Dispatch(audit.Event{
		Owner:    s.owner,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: id,
	})

	s.reload(ctx)
	return updated, nil
}
