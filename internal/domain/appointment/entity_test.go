package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"":            StatusScheduled,
		"scheduled":   StatusScheduled,
		"present":     StatusPresent,
		"ABSENT":      StatusAbsent,
		"rescheduled": StatusRescheduled,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Errorf("ParseStatus(%q) = %q, %v", in, got, err)
		}
	}

	if _, err := ParseStatus("cancelled"); !httperr.IsValidation(err) {
		t.Errorf("unknown status err = %v", err)
	}
}

func TestDraftValidateListsMissingFields(t *testing.T) {
	err := Draft{}.Validate()

	var ve httperr.ValidationError
	if !asValidation(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := []string{"client_name", "services", "time", "date"}
	if len(ve.Missing) != len(want) {
		t.Fatalf("missing = %v", ve.Missing)
	}
	for i := range want {
		if ve.Missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, ve.Missing[i], want[i])
		}
	}
}

func TestNewAppointmentTotalIsSumOfItems(t *testing.T) {
	d := Draft{
		ClientName: "Ana",
		Services: models.ServiceItems{
			{ID: "1", Name: "Corte", Price: decimal.RequireFromString("45.50")},
			{ID: "2", Name: "Escova", Price: decimal.RequireFromString("30")},
		},
		Date: "2025-03-10",
		Time: "14:30:00",
	}

	ap := NewAppointment("id-1", d)
	if !ap.TotalValue.Equal(decimal.RequireFromString("75.50")) {
		t.Errorf("total = %s", ap.TotalValue)
	}
	if ap.Status != string(StatusScheduled) {
		t.Errorf("status = %q", ap.Status)
	}
	if ap.AppointmentTime != "14:30" {
		t.Errorf("time = %q", ap.AppointmentTime)
	}

	d.Services[0].Name = "changed"
	if ap.Services[0].Name != "Corte" {
		t.Error("items must be copied by value")
	}
}

func TestOverwriteFieldsStatusOnlyWhenSet(t *testing.T) {
	d := Draft{ClientName: "Ana", Date: "2025-03-10", Time: "10:00"}
	if _, ok := OverwriteFields(d)["status"]; ok {
		t.Error("status written without a draft status")
	}

	st := StatusRescheduled
	d.Status = &st
	if got := OverwriteFields(d)["status"]; got != "rescheduled" {
		t.Errorf("status = %v", got)
	}
}

func TestIsEligibleForStatusAction(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, saoPaulo)

	cases := []struct {
		name string
		ap   models.Appointment
		want bool
	}{
		{"today earlier", models.Appointment{AppointmentDate: "2025-03-10", AppointmentTime: "13:59"}, true},
		{"today exactly now", models.Appointment{AppointmentDate: "2025-03-10", AppointmentTime: "14:00"}, true},
		{"today later", models.Appointment{AppointmentDate: "2025-03-10", AppointmentTime: "14:01"}, false},
		{"tomorrow early", models.Appointment{AppointmentDate: "2025-03-11", AppointmentTime: "00:00"}, false},
		{"tomorrow late", models.Appointment{AppointmentDate: "2025-03-11", AppointmentTime: "23:59"}, false},
		{"yesterday unsettled", models.Appointment{AppointmentDate: "2025-03-09", AppointmentTime: "09:00"}, false},
		{"future present", models.Appointment{AppointmentDate: "2025-03-11", AppointmentTime: "09:00", Status: "present"}, true},
		{"future absent", models.Appointment{AppointmentDate: "2025-03-20", AppointmentTime: "09:00", Status: "absent"}, true},
		{"rescheduled", models.Appointment{AppointmentDate: "2025-03-20", AppointmentTime: "09:00", Status: "rescheduled"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEligibleForStatusAction(tc.ap, now); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanReorder(t *testing.T) {
	if err := CanReorder(models.Appointment{Status: "present"}); err != nil {
		t.Errorf("present: %v", err)
	}
	if err := CanReorder(models.Appointment{Status: "rescheduled"}); !httperr.IsBusiness(err, "reorder_locked") {
		t.Errorf("rescheduled: %v", err)
	}
}

func asValidation(err error, target *httperr.ValidationError) bool {
	ve, ok := err.(httperr.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}
