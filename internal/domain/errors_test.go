package domain_test

import (
	"testing"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

func TestDuplicateNameError_Error(t *testing.T) {
	err := &domain.DuplicateNameError{Name: "Acme"}
	want := `tenant name "Acme" is already in use`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestExternalUIDConflictError_Error(t *testing.T) {
	err := &domain.ExternalUIDConflictError{ExternalUID: "u1"}
	want := `external uid "u1" is already in use`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
