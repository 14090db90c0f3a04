// Package subscription decides what an owner may use according to the
// current plan and trial period.
package subscription

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

type Plan string

const (
	PlanTrial      Plan = "trial"
	PlanIndividual Plan = "individual"
	PlanTeam       Plan = "team"
)

// MaxStaff is how many employees the team plan allows.
const MaxStaff = 5

// Views an expired trial can still open.
var expiredViews = []string{"subscription", "settings"}

type Offer struct {
	Plan  Plan            `json:"plan"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

var offers = []Offer{
	{PlanIndividual, "Plano Individual", decimal.RequireFromString("49.90")},
	{PlanTeam, "Plano Equipe", decimal.RequireFromString("99.90")},
}

func Offers() []Offer {
	return slices.Clone(offers)
}

func OfferFor(p Plan) (Offer, error) {
	for _, o := range offers {
		if o.Plan == p {
			return o, nil
		}
	}
	return Offer{}, httperr.ErrBusiness("invalid_plan")
}

func ParsePlan(s string) (Plan, error) {
	switch p := Plan(s); p {
	case PlanTrial, PlanIndividual, PlanTeam:
		return p, nil
	}
	return "", httperr.ErrValidation("plan")
}

// DaysLeft counts whole days left in the trial, rounding up. No end date
// means no trial running.
func DaysLeft(trialEndsAt *time.Time, now time.Time) int {
	if trialEndsAt == nil {
		return 0
	}
	d := trialEndsAt.Sub(now).Hours() / 24
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d))
}

type Status struct {
	Plan     Plan `json:"plan"`
	DaysLeft int  `json:"days_left"`
	Expired  bool `json:"expired"`
}

func StatusOf(plan string, trialEndsAt *time.Time, now time.Time) Status {
	p := Plan(plan)
	if p == "" {
		p = PlanTrial
	}
	st := Status{Plan: p}
	if p == PlanTrial {
		st.DaysLeft = DaysLeft(trialEndsAt, now)
		st.Expired = trialEndsAt != nil && !now.Before(*trialEndsAt)
	}
	return st
}

// CanOpen tells whether view is available under st.
func (st Status) CanOpen(view string) bool {
	if !st.Expired {
		return true
	}
	return slices.Contains(expiredViews, view)
}

// AllowsStaff is true only on the team plan.
func (st Status) AllowsStaff() bool {
	return st.Plan == PlanTeam
}
