package phone

import "strings"

// Digits strips every non-digit character from a phone number. The WhatsApp
// Graph API expects bare digits ("+1 234-567-8900" → "12345678900").
func Digits(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
