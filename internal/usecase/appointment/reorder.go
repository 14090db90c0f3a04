package appointment

import (
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// Reorder moves the item at from to position to. It only touches the
// in-memory list; the next LoadDay restores time order.
func (s *Schedule) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.appointments)
	if from < 0 || from >= n || to < 0 || to >= n {
		return httperr.ErrValidation("index")
	}
	if from == to {
		return nil
	}
	if err := domain.CanReorder(s.appointments[from]); err != nil {
		return err
	}

	item := s.appointments[from]

	moved := make([]models.Appointment, 0, n)
	moved = append(moved, s.appointments[:from]...)
	moved = append(moved, s.appointments[from+1:]...)

	moved = append(moved, models.Appointment{})
	copy(moved[to+1:], moved[to:])
	moved[to] = item

	s.appointments = moved
	return nil
}
