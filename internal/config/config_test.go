package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MESSAGING_PROVIDER", "")
	t.Setenv("TRIAL_DAYS", "")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
	if cfg.MessagingProvider != "webhook" {
		t.Errorf("MessagingProvider = %q, want webhook", cfg.MessagingProvider)
	}
	if cfg.TrialDays != 7 {
		t.Errorf("TrialDays = %d, want 7", cfg.TrialDays)
	}
	if cfg.MessagingTimeout != 0 {
		t.Errorf("MessagingTimeout = %s, want 0", cfg.MessagingTimeout)
	}
}

func TestGetDuration(t *testing.T) {
	cases := []struct {
		value string
		want  time.Duration
	}{
		{"", 5 * time.Second},
		{"30", 30 * time.Second},
		{"1m30s", 90 * time.Second},
		{"nope", 5 * time.Second},
	}

	for _, tc := range cases {
		t.Setenv("TEST_DURATION", tc.value)
		if got := getDuration("TEST_DURATION", 5*time.Second); got != tc.want {
			t.Errorf("getDuration(%q) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_INT", "12")
	if got := getInt("TEST_INT", 1); got != 12 {
		t.Errorf("getInt = %d, want 12", got)
	}

	t.Setenv("TEST_INT", "x")
	if got := getInt("TEST_INT", 1); got != 1 {
		t.Errorf("getInt invalid = %d, want 1", got)
	}
}

func TestGetList(t *testing.T) {
	t.Setenv("TEST_LIST", " https://a.app , ,https://b.app")
	got := getList("TEST_LIST")
	if len(got) != 2 || got[0] != "https://a.app" || got[1] != "https://b.app" {
		t.Errorf("getList = %v", got)
	}

	t.Setenv("TEST_LIST", "")
	if got := getList("TEST_LIST"); got != nil {
		t.Errorf("getList empty = %v, want nil", got)
	}
}
