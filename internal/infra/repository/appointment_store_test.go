package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

func newRepo(t *testing.T) *AppointmentRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		t.Fatal(err)
	}
	return NewAppointmentRepository(store.NewGormStore[models.Appointment](db))
}

func TestListForDateOrdersByTime(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	for _, ap := range []models.Appointment{
		{ID: "late", ClientName: "B", AppointmentDate: "2025-03-10", AppointmentTime: "17:00"},
		{ID: "early", ClientName: "A", AppointmentDate: "2025-03-10", AppointmentTime: "08:15"},
		{ID: "other-day", ClientName: "C", AppointmentDate: "2025-03-11", AppointmentTime: "07:00"},
	} {
		ap := ap
		ap.TotalValue = decimal.Zero
		if err := r.CreateAppointment(ctx, "owner", &ap); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := r.ListForDate(ctx, "owner", "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].ID != "early" || rows[1].ID != "late" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	r := newRepo(t)

	_, err := r.UpdateAppointment(context.Background(), "owner", "nope", map[string]any{"status": "present"})
	if !httperr.IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}
