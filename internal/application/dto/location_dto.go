package dto

import "time"

// CreateLocationRequest body for POST /api/locations. The name is stored
// upper-cased.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Type string `json:"type" validate:"required,oneof=main camp kitchen"`
}

// LocationResponse one location.
type LocationResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse paged location listing.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateOrganizationRequest body for POST /api/organizations.
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// OrganizationResponse one organization.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
