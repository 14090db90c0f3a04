package validators

import "strings"

// MinPhoneDigits is the shortest number (DDD + subscriber) a gateway accepts.
const MinPhoneDigits = 10

// PhoneDigits strips everything that is not 0-9.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	return len(PhoneDigits(phone)) >= MinPhoneDigits
}

// FormatPhone renders up to 11 digits as "(11) 98765-4321".
func FormatPhone(phone string) string {
	digits := PhoneDigits(phone)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var out string
	if len(digits) > 0 {
		out = "(" + digits[:min(2, len(digits))]
	}
	if len(digits) > 2 {
		out += ") " + digits[2:min(7, len(digits))]
	}
	if len(digits) > 7 {
		out += "-" + digits[7:]
	}
	return out
}
