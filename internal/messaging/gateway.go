package messaging

import (
	"context"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/validators"
)

// CountryCode is prefixed to every destination number.
const CountryCode = "55"

// Gateway delivers a text message to a client's phone.
type Gateway interface {
	Send(ctx context.Context, phone, message string) error
}

// destination validates phone locally and returns the full number
// ("55" + digits). No network call happens when it fails.
func destination(phone string) (string, error) {
	if phone == "" {
		return "", httperr.MessagingError{Reason: "missing_phone"}
	}

	digits := validators.PhoneDigits(phone)
	if len(digits) < validators.MinPhoneDigits {
		return "", httperr.MessagingError{Reason: "invalid_phone", Detail: phone}
	}

	return CountryCode + digits, nil
}
