package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// TenantAdminResponse pairs a tenant with its TENANT_ADMIN user. The user
// fields are empty when the tenant has no admin.
type TenantAdminResponse struct {
	ID          string `json:"id" doc:"Tenant ID"`
	Name        string `json:"name" doc:"Tenant name"`
	UserID      string `json:"user_id" doc:"Admin user ID"`
	Username    string `json:"username" doc:"Admin login name"`
	ExternalUID string `json:"external_uid" doc:"Admin external UID"`
}

func toTenantAdminResponse(a domain.TenantAdmin) TenantAdminResponse {
	return TenantAdminResponse{
		ID:          a.ID,
		Name:        a.Name,
		UserID:      a.UserID,
		Username:    a.Username,
		ExternalUID: a.ExternalUID,
	}
}

type SaveTenantAdminInput struct {
	Body struct {
		ID          string `json:"id,omitempty" doc:"Existing tenant ID to update; omit to create"`
		Name        string `json:"name" maxLength:"255" doc:"Tenant name"`
		UserID      string `json:"user_id,omitempty" doc:"Existing admin user ID to update; omit to create"`
		Username    string `json:"username" maxLength:"255" doc:"Admin login name"`
		ExternalUID string `json:"external_uid" maxLength:"255" doc:"Admin external UID"`
	}
}

type TenantAdminOutput struct {
	Body TenantAdminResponse
}

type GetTenantAdminInput struct {
	ID string `path:"id" doc:"Tenant ID"`
}

type ListTenantAdminsOutput struct {
	Body []TenantAdminResponse
}

func (h *handler) registerTenantAdmins(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-tenant-admin",
		Method:      http.MethodPost,
		Path:        "/api/v1/tenant-admins",
		Summary:     "Create or update a tenant together with its admin user",
		Tags:        []string{"Tenant admins"},
	}, func(ctx context.Context, input *SaveTenantAdminInput) (*TenantAdminOutput, error) {
		b := input.Body
		admin, ok, err := h.svc.SaveTenantAdmin(ctx, domain.TenantAdmin{
			ID:          b.ID,
			Name:        b.Name,
			UserID:      b.UserID,
			Username:    b.Username,
			ExternalUID: b.ExternalUID,
		})
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error422UnprocessableEntity("invalid tenant admin")
		}
		return &TenantAdminOutput{Body: toTenantAdminResponse(admin)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenant-admins",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenant-admins",
		Summary:     "List every tenant with its admin user",
		Tags:        []string{"Tenant admins"},
	}, func(ctx context.Context, _ *struct{}) (*ListTenantAdminsOutput, error) {
		admins, err := h.svc.FindAllTenantAdmins(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]TenantAdminResponse, len(admins))
		for i, a := range admins {
			resp[i] = toTenantAdminResponse(a)
		}
		return &ListTenantAdminsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-tenant-admin",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenant-admins/{id}",
		Summary:     "Get a tenant with its admin user",
		Tags:        []string{"Tenant admins"},
	}, func(ctx context.Context, input *GetTenantAdminInput) (*TenantAdminOutput, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		admin, ok, err := h.svc.FindTenantAdminByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error404NotFound("tenant not found")
		}
		return &TenantAdminOutput{Body: toTenantAdminResponse(admin)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-tenant-admin",
		Method:        http.MethodDelete,
		Path:          "/api/v1/tenant-admins/{id}",
		Summary:       "Delete a tenant admin",
		Description:   "Removes the tenant row only. The admin user is kept.",
		Tags:          []string{"Tenant admins"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		if err := h.svc.RemoveTenantAdminByID(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})
}
