package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// RescheduleIntent is what starting a reschedule produces: the edit that
// marks the original and a new draft for the same client. Nothing is
// written until CompleteReschedule.
type RescheduleIntent struct {
	OriginalID   string
	MarkOriginal domain.Draft
	Next         domain.Draft
}

// Reschedule only prepares the intent. The original keeps its date and
// time; Next carries the client's name and phone with everything else
// blank.
func (s *Schedule) Reschedule(ap models.Appointment) RescheduleIntent {
	mark := domain.DraftFrom(ap)
	st := domain.StatusRescheduled
	mark.Status = &st

	return RescheduleIntent{
		OriginalID:   ap.ID,
		MarkOriginal: mark,
		Next: domain.Draft{
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
		},
	}
}

// CompleteReschedule issues exactly two writes: the edit marking the
// original rescheduled and the create of the new appointment. The new
// draft is validated first so the original is not marked for a draft that
// cannot be saved.
func (s *Schedule) CompleteReschedule(
	ctx context.Context,
	intent RescheduleIntent,
) (original *models.Appointment, created *models.Appointment, err error) {

	if err := intent.Next.Validate(); err != nil {
		return nil, nil, err
	}

	original, err = s.Edit(ctx, intent.OriginalID, intent.MarkOriginal)
	if err != nil {
		return nil, nil, err
	}

	created, err = s.Create(ctx, intent.Next)
	if err != nil {
		return original, nil, err
	}
	return original, created, nil
}
