package http

import (
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/tenantadmin/internal/app"
	"github.com/neomorfeo/tenantadmin/internal/domain"
)

const timestampLayout = time.RFC3339

// handler binds API operations to the admin service. Path ids are checked
// with the same validator the service uses so malformed ids answer 400
// instead of looking like a missing record.
type handler struct {
	svc       *app.AdminService
	validator domain.Validator
}

// Register adds all admin API routes to the Huma API.
func Register(api huma.API, svc *app.AdminService, validator domain.Validator) {
	h := &handler{svc: svc, validator: validator}
	h.registerTenants(api)
	h.registerUsers(api)
	h.registerTenantAdmins(api)
}

// DeleteInput addresses a single record by id.
type DeleteInput struct {
	ID string `path:"id" doc:"Record ID (UUID)"`
}

func (h *handler) checkID(id string) error {
	if !h.validator.IsWellFormedID(id) {
		return huma.Error400BadRequest("malformed id", &huma.ErrorDetail{
			Location: "path.id",
			Value:    id,
		})
	}
	return nil
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	var dupErr *domain.DuplicateNameError
	if errors.As(err, &dupErr) {
		return huma.Error409Conflict(dupErr.Error())
	}

	var uidErr *domain.ExternalUIDConflictError
	if errors.As(err, &uidErr) {
		return huma.Error409Conflict(uidErr.Error())
	}

	if errors.Is(err, domain.ErrTenantNotFound) {
		return huma.Error404NotFound("tenant not found")
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return huma.Error404NotFound("user not found")
	}

	return huma.Error500InternalServerError("internal server error")
}
