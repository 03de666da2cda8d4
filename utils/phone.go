package utils

import (
	"regexp"
	"strings"
)

var phoneSeparators = regexp.MustCompile(`[\s().-]`)

// NormalizePhoneNumber strips formatting separators before storage.
// It deliberately keeps a leading + and never rejects a number: applicants
// register from many countries and the form does not know their dial plan.
func NormalizePhoneNumber(phoneNumber string) string {
	cleaned := phoneSeparators.ReplaceAllString(phoneNumber, "")
	if strings.HasPrefix(cleaned, "+") {
		return "+" + strings.TrimLeft(cleaned[1:], "+")
	}
	return cleaned
}
