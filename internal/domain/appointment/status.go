package appointment

import (
	"strings"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusPresent     Status = "present"
	StatusAbsent      Status = "absent"
	StatusRescheduled Status = "rescheduled"
)

// ParseStatus lê o status persistido; vazio equivale a agendado
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "", StatusScheduled:
		return StatusScheduled, nil
	case StatusPresent, StatusAbsent, StatusRescheduled:
		return st, nil
	}
	return "", httperr.ErrValidation("status")
}

// StatusOf never fails: unknown values read as scheduled.
func StatusOf(raw string) Status {
	st, err := ParseStatus(raw)
	if err != nil {
		return StatusScheduled
	}
	return st
}

// ===============================
// Validations
// ===============================

// CanChangeStatus define os status aceitos pela ação de presença
func CanChangeStatus(next Status) error {
	if next != StatusPresent && next != StatusAbsent {
		return httperr.ErrValidation("status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// Settled reports whether attendance was already recorded.
func (s Status) Settled() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusRescheduled
}
