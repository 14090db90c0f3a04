package staff

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/domain/subscription"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

// PlanSource reports the owner's current plan status.
type PlanSource interface {
	Status(ctx context.Context, owner string) (subscription.Status, error)
}

type Input struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Team manages the employees of a team-plan owner.
type Team struct {
	records store.Store[models.Employee]
	plans   PlanSource
	newID   func() string

	// owner -> *sync.Mutex; serializes the limit check with the insert
	locks sync.Map
}

func NewTeam(records store.Store[models.Employee], plans PlanSource) *Team {
	return &Team{records: records, plans: plans, newID: uuid.NewString}
}

func (t *Team) List(ctx context.Context, owner string) ([]models.Employee, error) {
	rows, err := t.records.List(ctx, owner, store.Query{}.Asc("created_at"))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	return rows, nil
}

func (t *Team) Add(ctx context.Context, owner string, in Input) (*models.Employee, error) {
	st, err := t.plans.Status(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !st.AllowsStaff() {
		return nil, httperr.ErrBusiness("team_plan_required")
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrValidation("name")
	}

	mu := t.lock(owner)
	mu.Lock()
	defer mu.Unlock()

	current, err := t.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(current) >= subscription.MaxStaff {
		return nil, httperr.ErrBusiness("staff_limit_reached")
	}

	emp := &models.Employee{
		ID:        t.newID(),
		Name:      strings.TrimSpace(in.Name),
		Role:      strings.TrimSpace(in.Role),
		Phone:     in.Phone,
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: time.Now(),
	}
	if err := t.records.Insert(ctx, owner, emp); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	return emp, nil
}

func (t *Team) lock(owner string) *sync.Mutex {
	mu, _ := t.locks.LoadOrStore(owner, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (t *Team) Remove(ctx context.Context, owner, id string) error {
	if err := t.records.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httperr.NotFoundError{Entity: "employee", ID: id}
		}
		return httperr.PersistenceError{Err: err}
	}
	return nil
}
