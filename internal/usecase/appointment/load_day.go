package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

// LoadDay selects date and replaces the list with that day's appointments
// ordered by time. On failure the list is cleared.
func (s *Schedule) LoadDay(ctx context.Context, date string) ([]models.Appointment, error) {
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, httperr.ErrValidation("date")
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.selectedDate = date
	s.loading = true
	s.mu.Unlock()

	rows, err := s.repo.ListForDate(ctx, s.owner, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return nil, ErrStaleLoad
	}
	s.loading = false

	if err != nil {
		s.appointments = nil
		return nil, httperr.FetchError{Err: err}
	}

	sortByTime(rows)
	s.appointments = rows
	return append([]models.Appointment(nil), rows...), nil
}

// Today reloads the current date in the studio timezone.
func (s *Schedule) Today(ctx context.Context) ([]models.Appointment, error) {
	return s.LoadDay(ctx, timezone.DateString(s.clock()))
}
