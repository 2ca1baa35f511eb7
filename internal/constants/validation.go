package constants

// Field Length Limits
const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
	MinNameLength     = 2
	MaxNameLength     = 150
	MaxEmailLength    = 255
)

// Token Settings
const (
	AccessTokenExpiry  = 15 * 60          // 15 minutes, in seconds
	RefreshTokenExpiry = 7 * 24 * 60 * 60 // 7 days, in seconds
)

// Validation Patterns
const (
	// BDPhonePattern accepts country-code-prefixed, national-prefixed and
	// local leading-zero Bangladeshi mobile numbers.
	BDPhonePattern = `^(?:\+8801|8801|01)[3-9]\d{8}$`

	// AccountPhonePattern matches the canonical stored digit form.
	AccountPhonePattern = `^\d{10,15}$`
)
