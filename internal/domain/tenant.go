package domain

import "time"

// Tenant is a top-level organizational unit of the platform.
// Names are unique across all tenants.
type Tenant struct {
	ID        string `validate:"omitempty,uuid"`
	Name      string `validate:"notblank,max=255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTenant creates a tenant with both timestamps set to now.
func NewTenant(id, name string) Tenant {
	now := time.Now().UTC()
	return Tenant{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
