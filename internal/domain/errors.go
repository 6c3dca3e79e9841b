package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrUserNotFound   = errors.New("user not found")
)

// DuplicateNameError is returned when a different tenant already holds the name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("tenant name %q is already in use", e.Name)
}

// ExternalUIDConflictError is returned when another user already holds the external uid.
type ExternalUIDConflictError struct {
	ExternalUID string
}

func (e *ExternalUIDConflictError) Error() string {
	return fmt.Sprintf("external uid %q is already in use", e.ExternalUID)
}
