// Package currency converts BRL amounts between their display form
// ("R$ 1.234,56") and decimal values.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const symbol = "R$"

// Parse reads a display string. Thousand separators are dots and the
// decimal separator is a comma. Without a comma, dots followed by
// 3-digit groups are thousands ("1.500"); otherwise the text is a plain
// decimal ("12.5"). Anything unparsable is zero.
func Parse(display string) decimal.Decimal {
	s := strings.TrimSpace(display)
	if s == "" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.ReplaceAll(s, symbol, "")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case isGrouped(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		v = v.Neg()
	}
	return v.Round(2)
}

// isGrouped reports whether s is digits split by dots into thousands
// groups: "1.234", "12.500", "1.234.567".
func isGrouped(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) < 2 || len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for i, g := range groups {
		if i > 0 && len(g) != 3 {
			return false
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// ParseDigits reads masked input where every digit typed shifts the
// value left by one cent ("12345" is 123,45).
func ParseDigits(masked string) decimal.Decimal {
	var b strings.Builder
	for _, r := range masked {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return v.Shift(-2)
}

// Format renders v as "R$ 1.234,56".
func Format(v decimal.Decimal) string {
	v = v.Round(2)

	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}

	fixed := v.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	return sign + symbol + " " + grouped.String() + "," + frac
}

// Sum adds amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
