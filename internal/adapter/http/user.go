package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// UserResponse is the API representation of a user.
type UserResponse struct {
	ID          string `json:"id" doc:"Unique identifier"`
	Username    string `json:"username" doc:"Login name"`
	ExternalUID string `json:"external_uid" doc:"Identifier in the external identity provider"`
	TenantID    string `json:"tenant_id" doc:"Owning tenant"`
	Authority   string `json:"authority" doc:"Access level within the tenant"`
	CreatedAt   string `json:"created_at" doc:"Creation timestamp (RFC 3339)"`
	UpdatedAt   string `json:"updated_at" doc:"Last update timestamp (RFC 3339)"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		ExternalUID: u.ExternalUID,
		TenantID:    u.TenantID,
		Authority:   string(u.Authority),
		CreatedAt:   u.CreatedAt.Format(timestampLayout),
		UpdatedAt:   u.UpdatedAt.Format(timestampLayout),
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	return resp
}

type SaveUserInput struct {
	Body struct {
		ID          string `json:"id,omitempty" doc:"Existing user ID to update; omit to create"`
		Username    string `json:"username" maxLength:"255" doc:"Login name"`
		ExternalUID string `json:"external_uid" maxLength:"255" doc:"Identifier in the external identity provider"`
		TenantID    string `json:"tenant_id" doc:"Owning tenant"`
		Authority   string `json:"authority" enum:"KAA_ADMIN,TENANT_ADMIN,TENANT_DEVELOPER,TENANT_USER" doc:"Access level within the tenant"`
	}
}

type UserOutput struct {
	Body UserResponse
}

type GetUserInput struct {
	ID string `path:"id" doc:"User ID"`
}

type GetUserByExternalUIDInput struct {
	ExternalUID string `path:"uid" doc:"External identity provider UID"`
}

type ListUsersOutput struct {
	Body []UserResponse
}

func (h *handler) registerUsers(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-user",
		Method:      http.MethodPost,
		Path:        "/api/v1/users",
		Summary:     "Create or update a user",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *SaveUserInput) (*UserOutput, error) {
		b := input.Body
		user, ok, err := h.svc.SaveUser(ctx,
			domain.NewUser(b.ID, b.Username, b.ExternalUID, b.TenantID, domain.Authority(b.Authority)))
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error422UnprocessableEntity("invalid user")
		}
		return &UserOutput{Body: toUserResponse(user)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/users",
		Summary:     "List users",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
		users, err := h.svc.FindAllUsers(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ListUsersOutput{Body: toUserResponses(users)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get a user by ID",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		user, ok, err := h.svc.FindUserByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error404NotFound("user not found")
		}
		return &UserOutput{Body: toUserResponse(user)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user-by-external-uid",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/by-external-uid/{uid}",
		Summary:     "Get a user by external UID",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *GetUserByExternalUIDInput) (*UserOutput, error) {
		user, ok, err := h.svc.FindUserByExternalUID(ctx, input.ExternalUID)
		if err != nil {
			return nil, toHumaError(err)
		}
		if !ok {
			return nil, huma.Error404NotFound("user not found")
		}
		return &UserOutput{Body: toUserResponse(user)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{id}",
		Summary:       "Delete a user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := h.checkID(input.ID); err != nil {
			return nil, err
		}
		if err := h.svc.RemoveUserByID(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})
}
