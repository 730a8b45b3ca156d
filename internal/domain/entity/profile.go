package entity

import "time"

// Valid roles for Profile.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Profile is a user of the system, tied to one organization and one home
// location.
type Profile struct {
	ID           string
	OrgID        string
	LocationID   string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	FullName     string
	Role         string // admin, manager, staff
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
