package utils

import "strings"

// NormalizePhoneNumber strips every non-digit so "(555) 123-4567" and
// "5551234567" match the same customer.
func NormalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
