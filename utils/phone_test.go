package utils

import "testing"

func TestNormalizePhoneNumber(t *testing.T) {
	cases := map[string]string{
		"123":                "123",
		"+1 (555) 010-2030":  "+15550102030",
		"071 234 5678":       "0712345678",
		"+27-82-123-4567":    "+27821234567",
		"(011) 555.2368":     "0115552368",
	}
	for in, want := range cases {
		if got := NormalizePhoneNumber(in); got != want {
			t.Fatalf("NormalizePhoneNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
