package entity

import "time"

// Location types.
const (
	LocationTypeMain    = "main"
	LocationTypeCamp    = "camp"
	LocationTypeKitchen = "kitchen"
)

// Location is a physical site holding stock (main store, camp, kitchen/bar).
// Names are stored upper-cased.
type Location struct {
	ID        string
	OrgID     string
	Name      string
	Type      string // main, camp, kitchen
	CreatedAt time.Time
	UpdatedAt time.Time
}
