// Package normalize holds the canonicalization rules applied to
// user-supplied identifiers before any uniqueness check or persistence write.
// All functions are pure and idempotent.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Phone maps any accepted Bangladeshi mobile form to the canonical local
// digit representation 01XXXXXXXXX. Inputs it does not recognize are
// returned trimmed but otherwise unchanged; format enforcement is the
// validation layer's job, not this one's.
func Phone(phone string) string {
	p := strings.TrimSpace(phone)

	switch {
	case strings.HasPrefix(p, "+8801"):
		return "0" + p[len("+880"):]
	case strings.HasPrefix(p, "8801"):
		return "0" + p[len("880"):]
	default:
		return p
	}
}
