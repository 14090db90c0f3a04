package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

// --------- Requests ---------

type CreateInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Value       decimal.Decimal `json:"value"`
	DurationMin int             `json:"duration_min"`
}

type UpdateInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	Category string
	Active   *bool
	Query    string
}

type Services struct {
	records store.Store[models.Service]
	newID   func() string
}

func NewServices(records store.Store[models.Service]) *Services {
	return &Services{records: records, newID: uuid.NewString}
}

func (s *Services) List(ctx context.Context, owner string, f Filter) ([]models.Service, error) {
	q := store.Query{}.Asc("name")
	if f.Active != nil {
		q = q.Eq("active", *f.Active)
	}

	rows, err := s.records.List(ctx, owner, q)
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}

	category := strings.ToLower(strings.TrimSpace(f.Category))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := rows[:0]
	for _, svc := range rows {
		if category != "" && strings.ToLower(svc.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(svc.Name), query) &&
			!strings.Contains(strings.ToLower(svc.Description), query) {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

// Get loads one service, used by the comanda builder and the agenda.
func (s *Services) Get(ctx context.Context, owner, id string) (*models.Service, error) {
	rows, err := s.records.List(ctx, owner, store.Query{}.Eq("id", id))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	if len(rows) == 0 {
		return nil, httperr.NotFoundError{Entity: "service", ID: id}
	}
	return &rows[0], nil
}

func (s *Services) Create(ctx context.Context, owner string, in CreateInput) (*models.Service, error) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Value.IsNegative() {
		missing = append(missing, "value")
	}
	if in.DurationMin < 0 {
		missing = append(missing, "duration_min")
	}
	if len(missing) > 0 {
		return nil, httperr.ErrValidation(missing...)
	}

	svc := &models.Service{
		ID:          s.newID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Value:       in.Value.Round(2),
		DurationMin: in.DurationMin,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := s.records.Insert(ctx, owner, svc); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	return svc, nil
}

func (s *Services) Update(ctx context.Context, owner, id string, in UpdateInput) (*models.Service, error) {
	patch := store.Patch{}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, httperr.ErrValidation("name")
		}
		patch["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		patch["description"] = *in.Description
	}
	if in.Category != nil {
		patch["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return nil, httperr.ErrValidation("value")
		}
		patch["value"] = in.Value.Round(2)
	}
	if in.DurationMin != nil {
		patch["duration_min"] = *in.DurationMin
	}
	if in.Active != nil {
		patch["active"] = *in.Active
	}

	if len(patch) == 0 {
		return s.Get(ctx, owner, id)
	}

	svc, err := s.records.Update(ctx, owner, id, patch)
	if err != nil {
		return nil, writeErr(err, id)
	}
	return svc, nil
}

func (s *Services) Delete(ctx context.Context, owner, id string) error {
	if err := s.records.Delete(ctx, owner, id); err != nil {
		return writeErr(err, id)
	}
	return nil
}

func writeErr(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return httperr.NotFoundError{Entity: "service", ID: id}
	}
	return httperr.PersistenceError{Err: err}
}
