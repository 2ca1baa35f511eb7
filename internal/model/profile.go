package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PresentAddress is the structured present-address record, stored as a JSONB
// column on the profile row.
type PresentAddress struct {
	Careof   string `json:"careof"`
	Village  string `json:"village"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Post     string `json:"post"`
	Postcode string `json:"postcode"`
}

// Education is one examination record (SSC or HSC), stored as JSONB.
type Education struct {
	Exam       string  `json:"exam"`
	Roll       string  `json:"roll"`
	Group      string  `json:"group"`
	GroupOther *string `json:"group_other,omitempty"`
	Board      string  `json:"board"`
	BoardOther *string `json:"board_other,omitempty"`
	ResultType string  `json:"result_type"`
	Result     float64 `json:"result"`
	Year       string  `json:"year"`
}

// Profile is one applicant's full application record, owned by exactly one
// User. The owner relation is immutable after creation.
type Profile struct {
	gorm.Model
	UserID uint `gorm:"column:user_id;not null;index"`

	Name     string `gorm:"column:name;not null"`
	NameBn   string `gorm:"column:name_bn;not null"`
	Father   string `gorm:"column:father;not null"`
	FatherBn string `gorm:"column:father_bn;not null"`
	Mother   string `gorm:"column:mother;not null"`
	MotherBn string `gorm:"column:mother_bn;not null"`

	Dob    time.Time `gorm:"column:dob;not null"`
	Gender string    `gorm:"column:gender;not null"`

	// Nid is "1" when the applicant has a national ID, "0" otherwise. NidNo
	// is required exactly when Nid is "1"; Breg covers the "0" case.
	Nid      string  `gorm:"column:nid;not null"`
	NidNo    string  `gorm:"column:nid_no"`
	Breg     *string `gorm:"column:breg"`
	Passport *string `gorm:"column:passport"`

	Email         string `gorm:"column:email;not null"`
	Mobile        string `gorm:"column:mobile;not null"`
	ConfirmMobile string `gorm:"column:confirm_mobile;not null"`

	Nationality   string  `gorm:"column:nationality;not null"`
	Religion      string  `gorm:"column:religion;not null"`
	MaritalStatus string  `gorm:"column:marital_status;not null"`
	Quota         string  `gorm:"column:quota;not null"`
	DepStatus     *string `gorm:"column:dep_status"`

	PresentAddress datatypes.JSONType[PresentAddress] `gorm:"column:present_address;type:jsonb"`
	SSC            datatypes.JSONType[Education]      `gorm:"column:ssc;type:jsonb"`
	HSC            datatypes.JSONType[Education]      `gorm:"column:hsc;type:jsonb"`
}
