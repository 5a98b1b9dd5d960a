package utils

import "strings"

// MaskCardNumber keeps only the last 4 digits of a card number.
// Separators are stripped before masking so "4111 1111 1111 1234" and
// "4111-1111-1111-1234" mask the same way.
func MaskCardNumber(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
