package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

const PlanTrial = "trial"

// Service reads and writes the owner's profile row, creating it with a
// trial period on first access.
type Service struct {
	profiles  store.Store[models.Profile]
	trialDays int
	now       func() time.Time
}

func NewService(profiles store.Store[models.Profile], trialDays int) *Service {
	return &Service{profiles: profiles, trialDays: trialDays, now: time.Now}
}

func (s *Service) Get(ctx context.Context, owner string) (*models.Profile, error) {
	rows, err := s.profiles.List(ctx, owner, store.Query{})
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	if len(rows) > 0 {
		return &rows[0], nil
	}

	trialEnds := s.now().AddDate(0, 0, s.trialDays)
	p := &models.Profile{
		ID:               uuid.NewString(),
		SubscriptionPlan: PlanTrial,
		TrialEndsAt:      &trialEnds,
		Timezone:         timezone.DefaultTimezone,
		Categories:       models.StringList{},
	}
	if err := s.profiles.Insert(ctx, owner, p); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	return p, nil
}

// Update applies patch to the owner's profile.
func (s *Service) Update(ctx context.Context, owner string, patch store.Patch) (*models.Profile, error) {
	p, err := s.Get(ctx, owner)
	if err != nil || len(patch) == 0 {
		return p, err
	}

	updated, err := s.profiles.Update(ctx, owner, p.ID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFoundError{Entity: "profile", ID: p.ID}
		}
		return nil, httperr.PersistenceError{Err: err}
	}
	return updated, nil
}

// Location is the studio timezone of owner, falling back to the default.
func (s *Service) Location(ctx context.Context, owner string) *time.Location {
	p, err := s.Get(ctx, owner)
	if err != nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return timezone.Location(p.Timezone)
}
