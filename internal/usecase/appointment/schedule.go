package appointment

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/messaging"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

// ErrStaleLoad is returned to a LoadDay call whose result arrived after a
// newer LoadDay started. Its rows are discarded.
var ErrStaleLoad = errors.New("day load superseded")

// ======================================================
// SCHEDULE
// ======================================================

// Schedule holds one owner's appointments for a single selected day.
// The list is time-ordered on load and reorderable in memory afterwards;
// the order is never persisted.
type Schedule struct {
	owner   string
	repo    domain.Repository
	gateway messaging.Gateway
	audit   *audit.Dispatcher
	loc     *time.Location

	now   func() time.Time
	newID func() string

	mu           sync.Mutex
	selectedDate string
	appointments []models.Appointment
	loading      bool
	generation   uint64
}

type Option func(*Schedule)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Schedule) { s.now = now }
}

// WithIDs replaces uuid generation for new appointments.
func WithIDs(next func() string) Option {
	return func(s *Schedule) { s.newID = next }
}

func NewSchedule(
	owner string,
	repo domain.Repository,
	gateway messaging.Gateway,
	auditor *audit.Dispatcher,
	loc *time.Location,
	opts ...Option,
) *Schedule {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}

	s := &Schedule{
		owner:   owner,
		repo:    repo,
		gateway: gateway,
		audit:   auditor,
		loc:     loc,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.selectedDate = timezone.DateString(s.clock())
	return s
}

func (s *Schedule) Owner() string { return s.owner }

func (s *Schedule) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *Schedule) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

func (s *Schedule) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Appointments returns a copy of the current list in display order.
func (s *Schedule) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Appointment(nil), s.appointments...)
}

// Find looks id up in the loaded day.
func (s *Schedule) Find(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ap := range s.appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// reload refreshes the selected day after a write. Failures are already
// reflected in the cleared list, so they are only logged.
func (s *Schedule) reload(ctx context.Context) {
	if _, err := s.LoadDay(ctx, s.SelectedDate()); err != nil && !errors.Is(err, ErrStaleLoad) {
		log.Printf("agenda reload failed for %s: %v", s.owner, err)
	}
}

func sortByTime(list []models.Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].AppointmentTime < list[j].AppointmentTime
	})
}
