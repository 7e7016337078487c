package form

import "strings"

// NormalizePhone progressively reformats user input toward +1XXXXXXXXXX.
// Everything except digits and a single leading + is stripped; a leading 1
// gains a +, anything else gains +1; the result is truncated to +1 plus ten
// digits. Partial input ("+", "+1") passes through so typing can continue.
// Idempotent on already-normalized values.
func NormalizePhone(raw string) string {
	plus := false
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if r == '+' && digits.Len() == 0 && !plus {
			plus = true
		}
	}

	d := digits.String()
	var s string
	switch {
	case plus:
		s = "+" + d
	case d == "":
		return ""
	case strings.HasPrefix(d, "1"):
		s = "+" + d
	default:
		s = "+1" + d
	}

	if s == "+" || s == "+1" {
		return s
	}
	if !strings.HasPrefix(s, "+1") {
		s = "+1" + s[1:]
	}
	if len(s) > 12 {
		s = s[:12]
	}
	return s
}
