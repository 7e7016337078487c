package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"+", "+"},
		{"+1", "+1"},
		{"5551234567", "+15551234567"},
		{"15551234567", "+15551234567"},
		{"+15551234567", "+15551234567"},
		{"+1 (555) 123-4567", "+15551234567"},
		{"1 (555) 123-4567", "+15551234567"},
		{"(555) 123-4567", "+15551234567"},
		{"555", "+1555"},
		{"+5551234567", "+15551234567"},
		{"+155512345678901", "+15551234567"},
		{"abc", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"+", "+1", "+1555", "+15551234567", "5551234567", "+1 (555) 123-4567"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "normalizing %q twice", in)
	}
}
