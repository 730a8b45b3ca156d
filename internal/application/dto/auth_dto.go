package dto

import "time"

// RegisterRequest body for POST /api/auth/register. Password arrives plain
// and is hashed in the use case.
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullName   string `json:"full_name" validate:"omitempty,max=200"`
	OrgID      string `json:"org_id" validate:"required,uuid"`
	LocationID string `json:"location_id" validate:"required,uuid"`
	Role       string `json:"role" validate:"omitempty,oneof=admin manager staff"`
}

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileResponse a profile without the password hash.
type ProfileResponse struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	LocationID string    `json:"location_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProfileViewResponse the current profile joined with display fields, as
// GET /api/me returns it.
type ProfileViewResponse struct {
	ProfileResponse
	OrgName      string `json:"org_name"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type"`
}

// LoginResponse token plus the authenticated profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
