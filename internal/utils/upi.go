package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const upiSuffix = "@gapy"

// GenerateUPIID builds a payment address of the form
// "<username>.<bankabbr><rand4>@gapy". Uniqueness is enforced by the DB; the
// caller retries with MakeUPIIDUnique on a collision.
func GenerateUPIID(username, bankName string) (string, error) {
	uname := sanitize(username, 12, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	bankabbr := sanitize(bankName, 4, unicode.IsLetter)

	randDigits, err := GenerateSecureRandomString(2) // 4 hex chars
	if err != nil {
		return "", fmt.Errorf("failed to generate upi id suffix: %w", err)
	}

	return fmt.Sprintf("%s.%s%s%s", uname, bankabbr, randDigits, upiSuffix), nil
}

// MakeUPIIDUnique derives a collision-free variant of a candidate UPI id by
// appending the current unix timestamp before the suffix.
func MakeUPIIDUnique(candidate string) string {
	base := strings.TrimSuffix(candidate, upiSuffix)
	return fmt.Sprintf("%s%d%s", base, time.Now().Unix(), upiSuffix)
}

func sanitize(s string, maxLen int, keep func(rune) bool) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if keep(r) {
			b.WriteRune(r)
			if b.Len() >= maxLen {
				break
			}
		}
	}
	return b.String()
}
