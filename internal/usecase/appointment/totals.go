package appointment

import (
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/dto"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// Totals summarises a day. Earnings and Attended only count present
// appointments.
type Totals struct {
	Count    int
	Sum      decimal.Decimal
	Earnings decimal.Decimal
	Attended int
}

func ComputeTotals(list []models.Appointment) Totals {
	t := Totals{Sum: decimal.Zero, Earnings: decimal.Zero}
	for _, ap := range list {
		t.Count++
		t.Sum = t.Sum.Add(ap.TotalValue)
		if domain.StatusOf(ap.Status) == domain.StatusPresent {
			t.Attended++
			t.Earnings = t.Earnings.Add(ap.TotalValue)
		}
	}
	return t
}

func (s *Schedule) Totals() Totals {
	return ComputeTotals(s.Appointments())
}

// View renders the loaded day with the derived per-row flags.
func (s *Schedule) View() dto.DayDTO {
	s.mu.Lock()
	date, loading := s.selectedDate, s.loading
	list := append([]models.Appointment(nil), s.appointments...)
	s.mu.Unlock()

	now := s.clock()
	rows := make([]dto.AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		rows = append(rows, dto.AppointmentListDTO{
			ID:            ap.ID,
			ClientName:    ap.ClientName,
			ClientPhone:   ap.ClientPhone,
			Services:      ap.Services,
			TotalValue:    ap.TotalValue,
			Date:          ap.AppointmentDate,
			Time:          ap.AppointmentTime,
			Observations:  ap.Observations,
			Status:        string(domain.StatusOf(ap.Status)),
			StatusActions: domain.IsEligibleForStatusAction(ap, now),
			Reorderable:   domain.CanReorder(ap) == nil,
		})
	}

	t := ComputeTotals(list)
	return dto.DayDTO{
		Date:         date,
		Loading:      loading,
		Appointments: rows,
		Totals: dto.DayTotalsDTO{
			Count:    t.Count,
			Sum:      t.Sum,
			Earnings: t.Earnings,
			Attended: t.Attended,
		},
	}
}
