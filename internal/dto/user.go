package dto

import "time"

// UpdateUserRequest is the account-update schema: every editable field is
// optional. Email is carried only so an attempt to change it can be rejected;
// it is never written.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName" validate:"omitempty,min=2,max=150"`
	LastName  *string `json:"lastName" validate:"omitempty,min=2,max=150"`
	Phone     *string `json:"phone" validate:"omitempty,digits1015"`
	Avatar    *string `json:"avatar"`
	Role      *string `json:"role" validate:"omitempty,oneof=USER ADMIN SELLER"`
}

// UserResponse is the sanitized account representation: the storage
// identifier is exposed as id, password and refresh-session fields are never
// present.
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserFilter holds the whitelisted filter keys for GET /users.
type UserFilter struct {
	FirstName string `query:"firstName"`
	LastName  string `query:"lastName"`
	Phone     string `query:"phone"`
	Email     string `query:"email"`
}

// DeleteManyRequest carries identifiers for a batch delete.
type DeleteManyRequest struct {
	IDs []int64 `json:"ids"`
}
