package validation

import "fmt"

// customValidationMessages maps struct field -> validation tag -> message.
// Keep the wording stable: clients match on these strings.
var customValidationMessages = map[string]map[string]string{
	"FirstName": {
		"required": "First name is required.",
		"min":      "First name must be at least 2 characters long.",
		"max":      "First name cannot exceed 150 characters.",
	},
	"LastName": {
		"required": "Last name is required.",
		"min":      "Last name must be at least 2 characters long.",
		"max":      "Last name cannot exceed 150 characters.",
	},
	"Email": {
		"required": "Email is required.",
		"email":    "Please provide a valid email address.",
	},
	"Password": {
		"required": "Password is required.",
		"min":      "Password must be at least 8 characters long.",
		"max":      "Password must not exceed 64 characters.",
		"upper":    "Password must contain at least one uppercase letter.",
		"lower":    "Password must contain at least one lowercase letter.",
		"digit":    "Password must contain at least one number.",
		"symbol":   "Password must contain at least one special character.",
	},
	"Phone": {
		"digits1015": "Phone number must contain only digits (10-15 characters)",
	},
	"Role": {
		"oneof": "Role must be one of USER, ADMIN or SELLER",
	},
	"UserID": {
		"required": "User ID is required",
		"min":      "User ID cannot be empty",
	},
	"Name": {
		"required": "Name is required",
	},
	"NameBn": {
		"required": "Bangla name is required",
	},
	"Father": {
		"required": "Father's name is required",
	},
	"FatherBn": {
		"required": "Father's Bangla name is required",
	},
	"Mother": {
		"required": "Mother's name is required",
	},
	"MotherBn": {
		"required": "Mother's Bangla name is required",
	},
	"Dob": {
		"required": "Date of birth is required",
	},
	"Gender": {
		"required": "Gender is required",
	},
	"Nid": {
		"required": "NID is required",
	},
	"NidNo": {
		"required_if": "NID number is required when NID is set",
	},
	"Mobile": {
		"required": "Mobile is required",
		"bdphone":  "Mobile must be a valid Bangladeshi phone number",
	},
	"ConfirmMobile": {
		"required": "Confirm mobile is required",
		"bdphone":  "Confirm mobile must be a valid Bangladeshi phone number",
	},
	"Nationality": {
		"required": "Nationality is required",
	},
	"Religion": {
		"required": "Religion is required",
	},
	"MaritalStatus": {
		"required": "Marital status is required",
	},
	"Quota": {
		"required": "Quota is required",
	},
	"PresentAddress": {
		"required": "Present address is required",
	},
	"Careof": {
		"required": "Care of is required",
	},
	"Village": {
		"required": "Village is required",
	},
	"District": {
		"required": "District is required",
	},
	"Upazila": {
		"required": "Upazila is required",
	},
	"Post": {
		"required": "Post is required",
	},
	"Postcode": {
		"required": "Postcode is required",
	},
	"SSC": {
		"required": "SSC record is required",
	},
	"HSC": {
		"required": "HSC record is required",
	},
	"Exam": {
		"required": "Exam is required",
	},
	"Roll": {
		"required": "Roll is required",
	},
	"Group": {
		"required": "Group is required",
	},
	"Board": {
		"required": "Board is required",
	},
	"ResultType": {
		"required": "Result type is required",
	},
	"Result": {
		"required": "Result is required",
	},
	"Year": {
		"required": "Year is required",
	},
}

func CustomMessage(field string) map[string]string {
	return customValidationMessages[field]
}

// DefaultMessage covers fields or tags without a custom entry.
func DefaultMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s is too short", field)
	case "max":
		return fmt.Sprintf("%s is too long", field)
	default:
		return fmt.Sprintf("%s is invalid: %s", field, tag)
	}
}
