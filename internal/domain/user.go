package domain

import "time"

// Authority is the access level a user holds within its tenant.
type Authority string

const (
	AuthorityKaaAdmin        Authority = "KAA_ADMIN"
	AuthorityTenantAdmin     Authority = "TENANT_ADMIN"
	AuthorityTenantDeveloper Authority = "TENANT_DEVELOPER"
	AuthorityTenantUser      Authority = "TENANT_USER"
)

// Authorities lists every known authority.
var Authorities = []Authority{
	AuthorityKaaAdmin,
	AuthorityTenantAdmin,
	AuthorityTenantDeveloper,
	AuthorityTenantUser,
}

// TenantMemberAuthorities are the non-admin authorities listed as a tenant's users.
var TenantMemberAuthorities = []Authority{
	AuthorityTenantDeveloper,
	AuthorityTenantUser,
}

// User is an account bound to exactly one tenant. The tenant is referenced
// by ID only; removing the tenant leaves its users in place.
type User struct {
	ID          string    `validate:"omitempty,uuid"`
	Username    string    `validate:"notblank,max=255"`
	ExternalUID string    `validate:"notblank,max=255"`
	TenantID    string    `validate:"required,uuid"`
	Authority   Authority `validate:"oneof=KAA_ADMIN TENANT_ADMIN TENANT_DEVELOPER TENANT_USER"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser creates a user with both timestamps set to now.
func NewUser(id, username, externalUID, tenantID string, authority Authority) User {
	now := time.Now().UTC()
	return User{
		ID:          id,
		Username:    username,
		ExternalUID: externalUID,
		TenantID:    tenantID,
		Authority:   authority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
