package subscription

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/subscription"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/payment"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
)

type Result struct {
	Status   domain.Status     `json:"status"`
	Checkout *payment.Checkout `json:"checkout,omitempty"`
}

type Service struct {
	profiles *profile.Service
	checkout payment.Provider
	audit    *audit.Dispatcher
	now      func() time.Time
}

// NewService takes a nil checkout when no payment provider is configured.
func NewService(profiles *profile.Service, checkout payment.Provider, auditor *audit.Dispatcher) *Service {
	return &Service{profiles: profiles, checkout: checkout, audit: auditor, now: time.Now}
}

func (s *Service) Status(ctx context.Context, owner string) (domain.Status, error) {
	p, err := s.profiles.Get(ctx, owner)
	if err != nil {
		return domain.Status{}, err
	}
	return domain.StatusOf(p.SubscriptionPlan, p.TrialEndsAt, s.now()), nil
}

// Subscribe switches owner to plan and ends the trial.
func (s *Service) Subscribe(ctx context.Context, owner, plan string) (*Result, error) {
	p, err := domain.ParsePlan(plan)
	if err != nil {
		return nil, err
	}
	offer, err := domain.OfferFor(p)
	if err != nil {
		return nil, err
	}

	updated, err := s.profiles.Update(ctx, owner, store.Patch{
		"subscription_plan": string(p),
		"trial_ends_at":     nil,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Status: domain.StatusOf(updated.SubscriptionPlan, updated.TrialEndsAt, s.now())}

	if s.checkout != nil {
		co, err := s.checkout.CreateCheckout(ctx, owner+":"+string(p), payment.CheckoutItem{
			Title: offer.Title,
			Price: offer.Price,
		})
		if err != nil {
			log.Printf("subscription: checkout for %s failed: %v", owner, err)
			return nil, httperr.ErrBusiness("checkout_unavailable")
		}
		res.Checkout = co
	}

	s.audit.Dispatch(audit.Event{
		Owner:    owner,
		Action:   "plan_changed",
		Entity:   "profile",
		EntityID: updated.ID,
		Metadata: map[string]string{"plan": string(p)},
	})

	return res, nil
}
