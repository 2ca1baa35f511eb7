// Package validation wraps go-playground/validator with the custom rules and
// per-field messages the request schemas need. Validation is purely
// structural; it never consults persisted state.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	bdPhoneRegex = regexp.MustCompile(`^(?:\+8801|8801|01)[3-9]\d{8}$`)

	passwordUpperRegex  = regexp.MustCompile(`[A-Z]`)
	passwordLowerRegex  = regexp.MustCompile(`[a-z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
	passwordSymbolRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// Bangladeshi mobile number: +8801 / 8801 / 01 prefix, second digit 3-9,
	// eight further digits.
	validate.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return bdPhoneRegex.MatchString(fl.Field().String())
	})

	// Composition rules only; length bounds are separate min/max tags so each
	// failure produces its own message.
	validate.RegisterValidation("upper", func(fl validator.FieldLevel) bool {
		return passwordUpperRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("lower", func(fl validator.FieldLevel) bool {
		return passwordLowerRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("digit", func(fl validator.FieldLevel) bool {
		return passwordDigitRegex.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("symbol", func(fl validator.FieldLevel) bool {
		return passwordSymbolRegex.MatchString(fl.Field().String())
	})

	// Canonical stored phone form: digits only, 10-15 characters.
	validate.RegisterValidation("digits1015", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) < 10 || len(value) > 15 {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &Validator{validate: validate}
}

// Validate checks a request struct and returns every violation as a
// human-readable message, in field declaration order. A nil/empty result
// means the value passed.
func (v *Validator) Validate(request interface{}) []string {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		if fieldMessages := CustomMessage(e.Field()); fieldMessages != nil {
			if msg, exists := fieldMessages[e.Tag()]; exists {
				messages = append(messages, msg)
				continue
			}
		}
		messages = append(messages, DefaultMessage(e.Field(), e.Tag()))
	}

	return messages
}

// Join concatenates collected messages the way the API reports them: a
// single comma-joined string.
func Join(messages []string) string {
	return strings.Join(messages, ",")
}

// IsBDPhone reports whether the value is an acceptable Bangladeshi mobile
// number in any of the accepted input forms.
func IsBDPhone(value string) bool {
	return bdPhoneRegex.MatchString(value)
}
