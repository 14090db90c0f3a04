package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid accepts a bare address ("ana@studio.com") with a dotted
// domain. Display names are rejected.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
