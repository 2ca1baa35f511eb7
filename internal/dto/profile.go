package dto

import "time"

// PresentAddressPayload is the structured present-address record. All six
// sub-fields are required.
type PresentAddressPayload struct {
	Careof   string `json:"careof" validate:"required"`
	Village  string `json:"village" validate:"required"`
	District string `json:"district" validate:"required"`
	Upazila  string `json:"upazila" validate:"required"`
	Post     string `json:"post" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// EducationPayload is one examination record (secondary or higher-secondary).
type EducationPayload struct {
	Exam       string   `json:"exam" validate:"required"`
	Roll       string   `json:"roll" validate:"required"`
	Group      string   `json:"group" validate:"required"`
	GroupOther *string  `json:"group_other"`
	Board      string   `json:"board" validate:"required"`
	BoardOther *string  `json:"board_other"`
	ResultType string   `json:"result_type" validate:"required"`
	Result     *float64 `json:"result" validate:"required"`
	Year       string   `json:"year" validate:"required"`
}

// CreateProfileRequest is the profile-create schema. The nid flag is "1"
// (has a national ID) or "0"; nid_no is required exactly when nid is "1".
type CreateProfileRequest struct {
	UserID string `json:"userId" validate:"required,min=1"`

	Name     string `json:"name" validate:"required"`
	NameBn   string `json:"name_bn" validate:"required"`
	Father   string `json:"father" validate:"required"`
	FatherBn string `json:"father_bn" validate:"required"`
	Mother   string `json:"mother" validate:"required"`
	MotherBn string `json:"mother_bn" validate:"required"`

	Dob    string `json:"dob" validate:"required"`
	Gender string `json:"gender" validate:"required"`

	Nid      string  `json:"nid" validate:"required"`
	NidNo    string  `json:"nid_no" validate:"required_if=Nid 1"`
	Breg     *string `json:"breg"`
	Passport *string `json:"passport"`

	Email         string `json:"email" validate:"required,email"`
	Mobile        string `json:"mobile" validate:"required,bdphone"`
	ConfirmMobile string `json:"confirm_mobile" validate:"required,bdphone"`

	Nationality   string  `json:"nationality" validate:"required"`
	Religion      string  `json:"religion" validate:"required"`
	MaritalStatus string  `json:"marital_status" validate:"required"`
	Quota         string  `json:"quota" validate:"required"`
	DepStatus     *string `json:"dep_status"`

	PresentAddress PresentAddressPayload `json:"present_address"`
	SSC            EducationPayload      `json:"ssc"`
	HSC            EducationPayload      `json:"hsc"`
}

// UpdateProfileRequest derives from the create schema with every field
// optional. UserID is carried only so an attempt to change the owner can be
// rejected.
type UpdateProfileRequest struct {
	UserID *string `json:"userId"`

	Name     *string `json:"name" validate:"omitempty,min=1"`
	NameBn   *string `json:"name_bn" validate:"omitempty,min=1"`
	Father   *string `json:"father" validate:"omitempty,min=1"`
	FatherBn *string `json:"father_bn" validate:"omitempty,min=1"`
	Mother   *string `json:"mother" validate:"omitempty,min=1"`
	MotherBn *string `json:"mother_bn" validate:"omitempty,min=1"`

	Dob    *string `json:"dob" validate:"omitempty,min=1"`
	Gender *string `json:"gender" validate:"omitempty,min=1"`

	Nid      *string `json:"nid"`
	NidNo    *string `json:"nid_no"`
	Breg     *string `json:"breg"`
	Passport *string `json:"passport"`

	Email         *string `json:"email" validate:"omitempty,email"`
	Mobile        *string `json:"mobile" validate:"omitempty,bdphone"`
	ConfirmMobile *string `json:"confirm_mobile" validate:"omitempty,bdphone"`

	Nationality   *string `json:"nationality" validate:"omitempty,min=1"`
	Religion      *string `json:"religion" validate:"omitempty,min=1"`
	MaritalStatus *string `json:"marital_status" validate:"omitempty,min=1"`
	Quota         *string `json:"quota" validate:"omitempty,min=1"`
	DepStatus     *string `json:"dep_status"`

	PresentAddress *PresentAddressPayload `json:"present_address"`
	SSC            *EducationPayload      `json:"ssc"`
	HSC            *EducationPayload      `json:"hsc"`
}

// ProfileResponse exposes the full application record with a public id.
type ProfileResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"userId"`

	Name     string `json:"name"`
	NameBn   string `json:"name_bn"`
	Father   string `json:"father"`
	FatherBn string `json:"father_bn"`
	Mother   string `json:"mother"`
	MotherBn string `json:"mother_bn"`

	Dob    time.Time `json:"dob"`
	Gender string    `json:"gender"`

	Nid      string  `json:"nid"`
	NidNo    string  `json:"nid_no,omitempty"`
	Breg     *string `json:"breg,omitempty"`
	Passport *string `json:"passport,omitempty"`

	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	ConfirmMobile string `json:"confirm_mobile"`

	Nationality   string  `json:"nationality"`
	Religion      string  `json:"religion"`
	MaritalStatus string  `json:"marital_status"`
	Quota         string  `json:"quota"`
	DepStatus     *string `json:"dep_status,omitempty"`

	PresentAddress PresentAddressPayload `json:"present_address"`
	SSC            EducationPayload      `json:"ssc"`
	HSC            EducationPayload      `json:"hsc"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileFilter holds the whitelisted filter keys for GET /profiles.
type ProfileFilter struct {
	UserID string `query:"userId"`
	Name   string `query:"name"`
	Email  string `query:"email"`
	Mobile string `query:"mobile"`
}
