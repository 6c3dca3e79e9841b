package domain_test

import (
	"testing"
	"time"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

func TestNewTenant(t *testing.T) {
	before := time.Now().UTC()
	tenant := domain.NewTenant("id-1", "Acme Corp")
	after := time.Now().UTC()

	if tenant.ID != "id-1" {
		t.Errorf("ID = %q, want %q", tenant.ID, "id-1")
	}
	if tenant.Name != "Acme Corp" {
		t.Errorf("Name = %q, want %q", tenant.Name, "Acme Corp")
	}
	if tenant.CreatedAt.Before(before) || tenant.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want between %v and %v", tenant.CreatedAt, before, after)
	}
	if tenant.UpdatedAt != tenant.CreatedAt {
		t.Errorf("UpdatedAt should equal CreatedAt on new tenant")
	}
}

func TestNewUser(t *testing.T) {
	user := domain.NewUser("u-1", "bob", "ext-1", "t-1", domain.AuthorityTenantUser)

	if user.ID != "u-1" {
		t.Errorf("ID = %q, want %q", user.ID, "u-1")
	}
	if user.TenantID != "t-1" {
		t.Errorf("TenantID = %q, want %q", user.TenantID, "t-1")
	}
	if user.Authority != domain.AuthorityTenantUser {
		t.Errorf("Authority = %q, want %q", user.Authority, domain.AuthorityTenantUser)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestTenantMemberAuthorities_ExcludeAdmins(t *testing.T) {
	for _, a := range domain.TenantMemberAuthorities {
		if a == domain.AuthorityTenantAdmin || a == domain.AuthorityKaaAdmin {
			t.Errorf("member authorities must not contain %q", a)
		}
	}
}

func TestTenantAdmin_AssembleFromTenantAndUser(t *testing.T) {
	tenant := domain.NewTenant("t-1", "Acme")
	admin := domain.NewTenantAdmin(tenant)

	if admin.ID != "t-1" || admin.Name != "Acme" {
		t.Errorf("admin = %+v, want tenant identity t-1/Acme", admin)
	}
	if admin.UserID != "" || admin.Username != "" || admin.ExternalUID != "" {
		t.Errorf("admin fields should be empty before AssignUser, got %+v", admin)
	}

	admin.AssignUser(domain.NewUser("u-1", "bob", "ext-1", "t-1", domain.AuthorityTenantAdmin))

	if admin.UserID != "u-1" {
		t.Errorf("UserID = %q, want %q", admin.UserID, "u-1")
	}
	if admin.Username != "bob" {
		t.Errorf("Username = %q, want %q", admin.Username, "bob")
	}
	if admin.ExternalUID != "ext-1" {
		t.Errorf("ExternalUID = %q, want %q", admin.ExternalUID, "ext-1")
	}
}

func TestTenantAdmin_Decompose(t *testing.T) {
	admin := domain.TenantAdmin{
		ID:          "t-1",
		Name:        "Acme",
		UserID:      "u-1",
		Username:    "bob",
		ExternalUID: "ext-1",
	}

	tenant := admin.Tenant()
	if tenant.ID != "t-1" || tenant.Name != "Acme" {
		t.Errorf("Tenant() = %+v, want t-1/Acme", tenant)
	}

	user := admin.User("t-2")
	if user.TenantID != "t-2" {
		t.Errorf("TenantID = %q, want %q", user.TenantID, "t-2")
	}
	if user.Authority != domain.AuthorityTenantAdmin {
		t.Errorf("Authority = %q, want %q", user.Authority, domain.AuthorityTenantAdmin)
	}
	if user.ID != "u-1" || user.Username != "bob" || user.ExternalUID != "ext-1" {
		t.Errorf("User() = %+v, want u-1/bob/ext-1", user)
	}
}
