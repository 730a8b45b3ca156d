package entity

import "time"

// Organization is the tenant boundary: locations, products, staff and
// inventory all hang off one organization.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
