package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// TenantResponse is the API representation of a tenant.
type TenantResponse struct {
	ID        string `json:"id" doc:"Unique identifier"`
	Name      string `json:"name" doc:"Unique display name"`
	CreatedAt string `json:"created_at" doc:"Creation timestamp (RFC 3339)"`
	UpdatedAt string `json:"updated_at" doc:"Last update timestamp (RFC 3339)"`
}

func toTenantResponse(t domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Format(timestampLayout),
		UpdatedAt: t.UpdatedAt.Format(timestampLayout),
	}
}

type SaveTenantInput struct {
	Body struct {
		ID   string `json:"id,omitempty" doc:"Existing tenant ID to update; omit to create"`
		Name string `json:"name" maxLength:"255" doc:"Unique display name"`
	}
}

type TenantOutput struct {
	Body TenantResponse
}

type GetTenantInput struct {
	ID string `path:"id" doc:"Tenant ID"`
}

type GetTenantByNameInput struct {
	Name string `path:"name" doc:"Tenant name"`
}

type ListTenantsOutput struct {
	Body []TenantResponse
}

type ListTenantUsersOutput struct {
	Body []UserResponse
}

func (h *handler) registerTenants(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-tenant",
		Method:      http.MethodPost,
		Path:        "/api/v1/tenants",
		Summary:     "Create or update a tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *SaveTenantInput) (*TenantOutput, error) {
		tenant, ok, err := h.svc.SaveTenant(ctx, domain.Tenant{ID: input.Body.ID, Name: input.Body.Name})
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error422UnprocessableEntity("invalid tenant")
		}
		return &TenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenants",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants",
		Summary:     "List tenants",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, _ *struct{}) (*ListTenantsOutput, error) {
		tenants, err := h.svc.FindAllTenants(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]TenantResponse, len(tenants))
		for i, t := range tenants {
			resp[i] = toTenantResponse(t)
		}
		return &ListTenantsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-tenant",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants/{id}",
		Summary:     "Get a tenant by ID",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *GetTenantInput) (*TenantOutput, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		tenant, ok, err := h.svc.FindTenantByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error404NotFound("tenant not found")
		}
		return &TenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-tenant-by-name",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants/by-name/{name}",
		Summary:     "Get a tenant by name",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *GetTenantByNameInput) (*TenantOutput, error) {
		tenant, ok, err := h.svc.FindTenantByName(ctx, input.Name)
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error404NotFound("tenant not found")
		}
		return &TenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-tenant",
		Method:        http.MethodDelete,
		Path:          "/api/v1/tenants/{id}",
		Summary:       "Delete a tenant",
		Description:   "Removes the tenant row only. Users of the tenant are kept.",
		Tags:          []string{"Tenants"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		if err := h.svc.RemoveTenantByID(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenant-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants/{id}/users",
		Summary:     "List the developers and users of a tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *GetTenantInput) (*ListTenantUsersOutput, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		users, _, err := h.svc.FindAllTenantUsers(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ListTenantUsersOutput{Body: toUserResponses(users)}, nil
	})
}
