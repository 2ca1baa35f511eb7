package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case", "Jane@X.com", "jane@x.com"},
		{"already canonical", "jane@x.com", "jane@x.com"},
		{"surrounding whitespace", "  Jane.Doe@Example.COM ", "jane.doe@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Email(tt.input))
		})
	}
}

func TestEmailIdempotent(t *testing.T) {
	once := Email("Jane@X.com")
	assert.Equal(t, once, Email(once))
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"country code with plus", "+8801712345678", "01712345678"},
		{"country code without plus", "8801712345678", "01712345678"},
		{"local leading zero", "01712345678", "01712345678"},
		{"unrecognized passes through", "12345", "12345"},
		{"whitespace trimmed", " +8801912345678 ", "01912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Phone(tt.input))
		})
	}
}

func TestPhoneIdempotent(t *testing.T) {
	once := Phone("+8801712345678")
	assert.Equal(t, once, Phone(once))
}
