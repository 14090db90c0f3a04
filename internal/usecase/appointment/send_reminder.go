package appointment

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/messaging"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// SendReminder messages the client with the confirmation template. The
// appointment is not modified.
func (s *Schedule) SendReminder(ctx context.Context, ap models.Appointment) error {
	if s.gateway == nil {
		return httperr.MessagingError{Reason: "gateway_not_configured"}
	}

	msg := messaging.ReminderMessage(ap.ClientName, ap.AppointmentDate, ap.AppointmentTime)
	if err := s.gateway.Send(ctx, ap.ClientPhone, msg); err != nil {
		if httperr.IsMessaging(err) {
			return err
		}
		return httperr.MessagingError{Reason: "send_failed", Detail: err.Error()}
	}

	s.audit.Dispatch(audit.Event{
		Owner:    s.owner,
		Action:   "reminder_sent",
		Entity:   "appointment",
		EntityID: ap.ID,
	})
	return nil
}
