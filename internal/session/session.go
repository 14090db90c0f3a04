// Package session keeps the per-owner interactive state between requests:
// the agenda day being viewed, the open comanda draft, the active view and
// the notices waiting to be shown.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/domain/subscription"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/comanda"
)

const (
	DefaultView = "dashboard"
	prefsID     = "prefs"
	maxNotices  = 20
)

// Views the owner can navigate to.
var Views = []string{
	"dashboard", "agenda", "clients", "services", "comanda",
	"finance", "staff", "subscription", "settings",
}

type Session struct {
	owner string
	prefs store.Store[models.Preferences]

	Schedule *appointment.Schedule
	Comanda  *comanda.Builder

	mu      sync.Mutex
	notices []Notice
	now     func() time.Time
}

// Notify queues err as an error notice. A nil err is ignored.
func (s *Session) Notify(err error) {
	if err == nil {
		return
	}
	s.push(LevelError, NoticeFor(err))
}

func (s *Session) Info(msg string) {
	s.push(LevelInfo, msg)
}

func (s *Session) push(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = append(s.notices, Notice{Level: level, Message: msg, At: s.now()})
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

// Drain returns the queued notices oldest first and empties the queue.
func (s *Session) Drain() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notices
	s.notices = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

// Preferences loads the saved view and colour scheme, defaulting to the
// dashboard in light mode.
func (s *Session) Preferences(ctx context.Context) (models.Preferences, error) {
	rows, err := s.prefs.List(ctx, s.owner, store.Query{})
	if err != nil {
		return models.Preferences{}, httperr.FetchError{Err: err}
	}
	if len(rows) == 0 {
		return models.Preferences{ID: prefsID, LastView: DefaultView}, nil
	}
	return rows[0], nil
}

// Navigate changes the active view. An expired trial can only reach the
// subscription and settings views.
func (s *Session) Navigate(ctx context.Context, view string, plan subscription.Status) (models.Preferences, error) {
	if !validView(view) {
		return models.Preferences{}, httperr.ErrValidation("view")
	}
	if !plan.CanOpen(view) {
		return models.Preferences{}, httperr.ErrBusiness("plan_expired")
	}
	return s.save(ctx, store.Patch{"last_view": view})
}

func (s *Session) SetDarkMode(ctx context.Context, on bool) (models.Preferences, error) {
	return s.save(ctx, store.Patch{"dark_mode": on})
}

func (s *Session) save(ctx context.Context, patch store.Patch) (models.Preferences, error) {
	current, err := s.Preferences(ctx)
	if err != nil {
		return models.Preferences{}, err
	}

	updated, err := s.prefs.Update(ctx, s.owner, current.ID, patch)
	if err == nil {
		return *updated, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Preferences{}, httperr.PersistenceError{Err: err}
	}

	// primeiro salvamento
	if v, ok := patch["last_view"].(string); ok {
		current.LastView = v
	}
	if v, ok := patch["dark_mode"].(bool); ok {
		current.DarkMode = v
	}
	if err := s.prefs.Insert(ctx, s.owner, &current); err != nil {
		return models.Preferences{}, httperr.PersistenceError{Err: err}
	}
	return current, nil
}

func validView(view string) bool {
	return slices.Contains(Views, view)
}
