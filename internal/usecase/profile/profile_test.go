package profile

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

type memObjects map[string][]byte

func (m memObjects) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	m[key] = body
	return "https://cdn.test/" + key, nil
}

func newService() *Service {
	s := NewService(store.NewLocalStore[models.Profile](store.NewMemoryKV(), "profiles"), 7)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestGetCreatesTrialProfileOnce(t *testing.T) {
	s := newService()
	ctx := context.Background()

	first, err := s.Get(ctx, "o")
	if err != nil {
		t.Fatal(err)
	}
	if first.SubscriptionPlan != PlanTrial || first.TrialEndsAt == nil {
		t.Fatalf("profile = %+v", first)
	}
	if want := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC); !first.TrialEndsAt.Equal(want) {
		t.Errorf("trial ends %v, want %v", first.TrialEndsAt, want)
	}

	again, _ := s.Get(ctx, "o")
	if again.ID != first.ID {
		t.Error("second Get must not create another profile")
	}
}

func TestSetLogo(t *testing.T) {
	s := newService()
	objects := memObjects{}

	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 40)))

	p, err := s.SetLogo(context.Background(), "o", objects, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if p.LogoURL != "https://cdn.test/logos/o.webp" || len(objects["logos/o.webp"]) == 0 {
		t.Errorf("logo = %q, stored %d bytes", p.LogoURL, len(objects["logos/o.webp"]))
	}

	if _, err := s.SetLogo(context.Background(), "o", objects, strings.NewReader("not an image")); !httperr.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
	if _, err := s.SetLogo(context.Background(), "o", nil, &buf); !httperr.IsBusiness(err, "storage_not_configured") {
		t.Errorf("err = %v", err)
	}
}
