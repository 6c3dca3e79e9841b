package domain

// TenantAdmin pairs a tenant with its TENANT_ADMIN user. It is assembled on
// read and split into a tenant save and a user save on write; it is never
// stored itself.
type TenantAdmin struct {
	ID          string `validate:"omitempty,uuid"`
	Name        string `validate:"notblank,max=255"`
	UserID      string `validate:"omitempty,uuid"`
	Username    string `validate:"notblank,max=255"`
	ExternalUID string `validate:"notblank,max=255"`
}

// NewTenantAdmin seeds a TenantAdmin with the tenant's identity and no admin user.
func NewTenantAdmin(t Tenant) TenantAdmin {
	return TenantAdmin{ID: t.ID, Name: t.Name}
}

// AssignUser fills the admin fields from u.
func (a *TenantAdmin) AssignUser(u User) {
	a.UserID = u.ID
	a.Username = u.Username
	a.ExternalUID = u.ExternalUID
}

// Tenant returns the tenant half of the composite.
func (a TenantAdmin) Tenant() Tenant {
	return Tenant{ID: a.ID, Name: a.Name}
}

// User returns the user half of the composite bound to tenantID.
func (a TenantAdmin) User(tenantID string) User {
	return User{
		ID:          a.UserID,
		Username:    a.Username,
		ExternalUID: a.ExternalUID,
		TenantID:    tenantID,
		Authority:   AuthorityTenantAdmin,
	}
}
