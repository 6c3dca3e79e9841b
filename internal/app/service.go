package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// errAdminUserRejected aborts a tenant admin save whose user half fails
// validation after the tenant was written, so the tenant write rolls back.
var errAdminUserRejected = errors.New("tenant admin user failed validation")

// AdminService orchestrates tenant, user and tenant admin operations.
//
// Reads and writes return ok == false with a nil error when the input is
// malformed or nothing matches. Errors are reserved for business-rule
// violations and store failures.
type AdminService struct {
	tenants   domain.TenantRepository
	users     domain.UserRepository
	validator domain.Validator
	tx        domain.Transactor
	logger    *slog.Logger
}

// NewAdminService creates a service with the given adapters.
func NewAdminService(
	tenants domain.TenantRepository,
	users domain.UserRepository,
	validator domain.Validator,
	tx domain.Transactor,
	logger *slog.Logger,
) *AdminService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdminService{
		tenants:   tenants,
		users:     users,
		validator: validator,
		tx:        tx,
		logger:    logger,
	}
}

// SaveTenant creates the tenant or updates it in place. A different tenant
// holding the same name yields a *domain.DuplicateNameError.
func (s *AdminService) SaveTenant(ctx context.Context, tenant domain.Tenant) (domain.Tenant, bool, error) {
	var saved domain.Tenant
	var ok bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, ok, err = s.saveTenant(ctx, tenant)
		return err
	})
	if err != nil {
		return domain.Tenant{}, false, err
	}
	return saved, ok, nil
}

// RemoveTenantByID deletes the tenant. Malformed ids are ignored.
func (s *AdminService) RemoveTenantByID(ctx context.Context, id string) error {
	if !s.validator.IsWellFormedID(id) {
		return nil
	}
	s.logger.DebugContext(ctx, "removing tenant", slog.String("tenant_id", id))
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.tenants.Delete(ctx, id)
	})
}

// FindTenantByName returns the tenant holding name. Blank names are not ok.
func (s *AdminService) FindTenantByName(ctx context.Context, name string) (domain.Tenant, bool, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Tenant{}, false, nil
	}
	var tenant domain.Tenant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		tenant, err = s.tenants.GetByName(ctx, name)
		return err
	})
	return tenantResult(tenant, err)
}

// FindTenantByID returns the tenant with the given id. Malformed ids are not ok.
func (s *AdminService) FindTenantByID(ctx context.Context, id string) (domain.Tenant, bool, error) {
	if !s.validator.IsWellFormedID(id) {
		return domain.Tenant{}, false, nil
	}
	var tenant domain.Tenant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		tenant, err = s.tenants.GetByID(ctx, id)
		return err
	})
	return tenantResult(tenant, err)
}

// FindAllTenants returns every tenant in store order.
func (s *AdminService) FindAllTenants(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		tenants, err = s.tenants.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tenants == nil {
		tenants = []domain.Tenant{}
	}
	return tenants, nil
}

// SaveUser inserts or updates the user keyed by its id, generating one when empty.
func (s *AdminService) SaveUser(ctx context.Context, user domain.User) (domain.User, bool, error) {
	var saved domain.User
	var ok bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		saved, ok, err = s.saveUser(ctx, user)
		return err
	})
	if err != nil {
		return domain.User{}, false, err
	}
	return saved, ok, nil
}

// RemoveUserByID deletes the user. Malformed ids are ignored.
func (s *AdminService) RemoveUserByID(ctx context.Context, id string) error {
	if !s.validator.IsWellFormedID(id) {
		return nil
	}
	s.logger.DebugContext(ctx, "removing user", slog.String("user_id", id))
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.users.Delete(ctx, id)
	})
}

// FindUserByExternalUID returns the user known to the identity provider as externalUID.
func (s *AdminService) FindUserByExternalUID(ctx context.Context, externalUID string) (domain.User, bool, error) {
	if strings.TrimSpace(externalUID) == "" {
		return domain.User{}, false, nil
	}
	var user domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.GetByExternalUID(ctx, externalUID)
		return err
	})
	return userResult(user, err)
}

// FindUserByID returns the user with the given id. Malformed ids are not ok.
func (s *AdminService) FindUserByID(ctx context.Context, id string) (domain.User, bool, error) {
	if !s.validator.IsWellFormedID(id) {
		return domain.User{}, false, nil
	}
	var user domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.GetByID(ctx, id)
		return err
	})
	return userResult(user, err)
}

// FindAllUsers returns every user in store order.
func (s *AdminService) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.users.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// FindAllTenantAdmins returns one entry per tenant. Admin fields are filled
// from the first TENANT_ADMIN user of the tenant and left empty otherwise.
func (s *AdminService) FindAllTenantAdmins(ctx context.Context) ([]domain.TenantAdmin, error) {
	var admins []domain.TenantAdmin
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tenants, err := s.tenants.List(ctx)
		if err != nil {
			return err
		}
		admins = make([]domain.TenantAdmin, 0, len(tenants))
		for _, t := range tenants {
			admin, err := s.buildTenantAdmin(ctx, t)
			if err != nil {
				return err
			}
			admins = append(admins, admin)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// FindTenantAdminByID assembles the tenant admin for one tenant.
func (s *AdminService) FindTenantAdminByID(ctx context.Context, id string) (domain.TenantAdmin, bool, error) {
	if !s.validator.IsWellFormedID(id) {
		return domain.TenantAdmin{}, false, nil
	}
	var admin domain.TenantAdmin
	var ok bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tenant, err := s.tenants.GetByID(ctx, id)
		if errors.Is(err, domain.ErrTenantNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		admin, err = s.buildTenantAdmin(ctx, tenant)
		ok = err == nil
		return err
	})
	if err != nil {
		return domain.TenantAdmin{}, false, err
	}
	return admin, ok, nil
}

// SaveTenantAdmin saves the tenant half and then its TENANT_ADMIN user in
// one transaction. Both halves are validated before anything is written; a
// failure in either write rolls both back.
func (s *AdminService) SaveTenantAdmin(ctx context.Context, admin domain.TenantAdmin) (domain.TenantAdmin, bool, error) {
	if !s.validator.IsStructurallyValid(admin) || !s.validUserID(admin.UserID) {
		return domain.TenantAdmin{}, false, nil
	}

	var result domain.TenantAdmin
	var ok bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		tenant, saved, err := s.saveTenant(ctx, admin.Tenant())
		if err != nil || !saved {
			return err
		}
		result = domain.NewTenantAdmin(tenant)

		// The user is bound to the id the tenant write produced.
		user, saved, err := s.saveUser(ctx, admin.User(tenant.ID))
		if err != nil {
			return err
		}
		if !saved {
			return fmt.Errorf("saving tenant admin %q: %w", tenant.ID, errAdminUserRejected)
		}
		result.AssignUser(user)
		result.ID = user.TenantID
		ok = true
		return nil
	})
	if err != nil {
		return domain.TenantAdmin{}, false, err
	}
	return result, ok, nil
}

// RemoveTenantAdminByID deletes the tenant row only; its users are kept.
func (s *AdminService) RemoveTenantAdminByID(ctx context.Context, tenantID string) error {
	return s.RemoveTenantByID(ctx, tenantID)
}

// FindAllTenantUsers returns the TENANT_DEVELOPER and TENANT_USER members of
// the tenant. TENANT_ADMIN users are never included.
func (s *AdminService) FindAllTenantUsers(ctx context.Context, tenantID string) ([]domain.User, bool, error) {
	if !s.validator.IsWellFormedID(tenantID) {
		return nil, false, nil
	}
	var users []domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.users.ListByTenantAndAuthorities(ctx, tenantID, domain.TenantMemberAuthorities...)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, true, nil
}

func (s *AdminService) saveTenant(ctx context.Context, tenant domain.Tenant) (domain.Tenant, bool, error) {
	if !s.validator.IsStructurallyValid(tenant) {
		return domain.Tenant{}, false, nil
	}

	existing, err := s.tenants.GetByName(ctx, tenant.Name)
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
	case err != nil:
		return domain.Tenant{}, false, fmt.Errorf("looking up tenant name: %w", err)
	case existing.ID != tenant.ID:
		s.logger.WarnContext(ctx, "tenant name already in use",
			slog.String("tenant_name", tenant.Name),
			slog.String("tenant_id", existing.ID),
		)
		return domain.Tenant{}, false, &domain.DuplicateNameError{Name: tenant.Name}
	}

	if tenant.ID == "" {
		tenant.ID = generateID()
	}
	s.logger.DebugContext(ctx, "saving tenant",
		slog.String("tenant_id", tenant.ID),
		slog.String("tenant_name", tenant.Name),
	)

	saved, err := s.tenants.Save(ctx, tenant)
	if err != nil {
		return domain.Tenant{}, false, err
	}
	return saved, true, nil
}

func (s *AdminService) saveUser(ctx context.Context, user domain.User) (domain.User, bool, error) {
	if !s.validator.IsStructurallyValid(user) {
		return domain.User{}, false, nil
	}

	if user.ID == "" {
		user.ID = generateID()
	}
	s.logger.DebugContext(ctx, "saving user",
		slog.String("user_id", user.ID),
		slog.String("tenant_id", user.TenantID),
		slog.String("authority", string(user.Authority)),
	)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return domain.User{}, false, err
	}
	return saved, true, nil
}

func (s *AdminService) buildTenantAdmin(ctx context.Context, tenant domain.Tenant) (domain.TenantAdmin, error) {
	admin := domain.NewTenantAdmin(tenant)
	users, err := s.users.ListByTenantAndAuthority(ctx, tenant.ID, domain.AuthorityTenantAdmin)
	if err != nil {
		return domain.TenantAdmin{}, err
	}
	if len(users) > 0 {
		admin.AssignUser(users[0])
	}
	return admin, nil
}

// validUserID accepts an empty id, which asks for a new user.
func (s *AdminService) validUserID(id string) bool {
	return id == "" || s.validator.IsWellFormedID(id)
}

func tenantResult(tenant domain.Tenant, err error) (domain.Tenant, bool, error) {
	if errors.Is(err, domain.ErrTenantNotFound) {
		return domain.Tenant{}, false, nil
	}
	if err != nil {
		return domain.Tenant{}, false, err
	}
	return tenant, true, nil
}

func userResult(user domain.User, err error) (domain.User, bool, error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}
