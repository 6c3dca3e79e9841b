package app

import "github.com/google/uuid"

// generateID produces a random UUID string for new tenants and users.
func generateID() string {
	return uuid.NewString()
}
