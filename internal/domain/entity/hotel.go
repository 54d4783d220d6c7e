package entity

import "time"

// Hotel is a registry entry for a property the connector processes.
type Hotel struct {
	ID        uint
	Code      string
	Name      string
	Timezone  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
