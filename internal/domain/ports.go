package domain

import "context"

// TenantRepository defines the persistence contract for tenants.
type TenantRepository interface {
	Save(ctx context.Context, tenant Tenant) (Tenant, error)
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetByName(ctx context.Context, name string) (Tenant, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Tenant, error)
}

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByExternalUID(ctx context.Context, externalUID string) (User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
	ListByTenantAndAuthority(ctx context.Context, tenantID string, authority Authority) ([]User, error)
	ListByTenantAndAuthorities(ctx context.Context, tenantID string, authorities ...Authority) ([]User, error)
}

// Validator checks identifiers and entities before they reach a repository.
type Validator interface {
	IsWellFormedID(value string) bool
	IsStructurallyValid(obj any) bool
}

// Transactor runs fn inside a single unit of work. Every repository call made
// with the context passed to fn commits or rolls back together.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

