package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone && loc != time.UTC {
		t.Errorf("Location fallback = %s", loc)
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := map[string]string{
		"09:30":    "09:30",
		"14:05:00": "14:05",
		" 07:00 ":  "07:00",
	}
	for in, want := range cases {
		got, err := NormalizeTime(in)
		if err != nil {
			t.Fatalf("NormalizeTime(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := NormalizeTime("25:99"); err == nil {
		t.Error("NormalizeTime(25:99) error = nil, want error")
	}
}

func TestCombine(t *testing.T) {
	got, err := Combine("2026-10-16", "14:30", time.UTC)
	if err != nil {
		t.Fatalf("Combine error = %v", err)
	}
	want := time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine = %s, want %s", got, want)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 10, 16, 22, 15, 3, 9, time.UTC)
	if got := StartOfDay(in); !got.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %s", got)
	}
}
