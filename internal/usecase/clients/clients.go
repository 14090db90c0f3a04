package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/validators"
)

type Input struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
}

func (in Input) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Phone != "" && !validators.IsPhoneValid(in.Phone) {
		missing = append(missing, "phone")
	}
	if in.Email != "" && !validators.IsEmailValid(in.Email) {
		missing = append(missing, "email")
	}
	if in.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
			missing = append(missing, "birth_date")
		}
	}
	if len(missing) > 0 {
		return httperr.ErrValidation(missing...)
	}
	return nil
}

type Service struct {
	records store.Store[models.Client]
	newID   func() string
}

func NewService(records store.Store[models.Client]) *Service {
	return &Service{records: records, newID: uuid.NewString}
}

// List returns owner's clients, newest first. query matches name, phone
// digits or email.
func (s *Service) List(ctx context.Context, owner, query string) ([]models.Client, error) {
	rows, err := s.records.List(ctx, owner, store.Query{}.Descending("created_at"))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows, nil
	}

	digits := validators.PhoneDigits(query)
	out := rows[:0]
	for _, cl := range rows {
		switch {
		case strings.Contains(strings.ToLower(cl.Name), query),
			strings.Contains(strings.ToLower(cl.Email), query),
			digits != "" && strings.Contains(validators.PhoneDigits(cl.Phone), digits):
			out = append(out, cl)
		}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, owner string, in Input) (*models.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cl := &models.Client{
		ID:        s.newID(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     validators.PhoneDigits(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		BirthDate: in.BirthDate,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := s.records.Insert(ctx, owner, cl); err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}
	return cl, nil
}

func (s *Service) Update(ctx context.Context, owner, id string, in Input) (*models.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cl, err := s.records.Update(ctx, owner, id, store.Patch{
		"name":       strings.TrimSpace(in.Name),
		"phone":      validators.PhoneDigits(in.Phone),
		"email":      strings.TrimSpace(in.Email),
		"birth_date": in.BirthDate,
		"notes":      in.Notes,
	})
	if err != nil {
		return nil, writeErr(err, id)
	}
	return cl, nil
}

func (s *Service) Delete(ctx context.Context, owner, id string) error {
	if err := s.records.Delete(ctx, owner, id); err != nil {
		return writeErr(err, id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, owner, id string) (*models.Client, error) {
	rows, err := s.records.List(ctx, owner, store.Query{}.Eq("id", id))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}
	if len(rows) == 0 {
		return nil, httperr.NotFoundError{Entity: "client", ID: id}
	}
	return &rows[0], nil
}

// BirthdaysOn returns the clients whose birth date falls on day's month
// and day.
func (s *Service) BirthdaysOn(ctx context.Context, owner string, day time.Time) ([]models.Client, error) {
	rows, err := s.records.List(ctx, owner, store.Query{}.Asc("name"))
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}

	suffix := day.Format("-01-02")
	var out []models.Client
	for _, cl := range rows {
		if len(cl.BirthDate) == len("2006-01-02") && strings.HasSuffix(cl.BirthDate, suffix) {
			out = append(out, cl)
		}
	}
	return out, nil
}

func writeErr(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return httperr.NotFoundError{Entity: "client", ID: id}
	}
	return httperr.PersistenceError{Err: err}
}
