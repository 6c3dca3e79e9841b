package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// Compile-time check: UserRepository implements domain.UserRepository.
var _ domain.UserRepository = (*UserRepository)(nil)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

const userColumns = `id, username, external_uid, tenant_id, authority, created_at, updated_at`

// Save inserts the user, or updates it in place when the id already exists.
func (r *UserRepository) Save(ctx context.Context, u domain.User) (domain.User, error) {
	q := conn(ctx, r.db)
	now := time.Now().UTC().Format(timeFormat)

	_, err := q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		     username = excluded.username,
		     external_uid = excluded.external_uid,
		     tenant_id = excluded.tenant_id,
		     authority = excluded.authority,
		     updated_at = excluded.updated_at`,
		u.ID, u.Username, u.ExternalUID, u.TenantID, string(u.Authority), now, now,
	)
	if err != nil {
		if isUniqueViolation(err, "users.external_uid") {
			return domain.User{}, &domain.ExternalUIDConflictError{ExternalUID: u.ExternalUID}
		}
		return domain.User{}, fmt.Errorf("saving user: %w", err)
	}

	return r.GetByID(ctx, u.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	))
}

func (r *UserRepository) GetByExternalUID(ctx context.Context, externalUID string) (domain.User, error) {
	return scanUser(conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE external_uid = ?`, externalUID,
	))
}

// Delete removes the user row. Deleting a missing user is not an error.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// List returns every user in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY rowid`)
}

// ListByTenantAndAuthority returns the tenant's users holding authority, in insertion order.
func (r *UserRepository) ListByTenantAndAuthority(ctx context.Context, tenantID string, authority domain.Authority) ([]domain.User, error) {
	return r.ListByTenantAndAuthorities(ctx, tenantID, authority)
}

// ListByTenantAndAuthorities returns the tenant's users holding any of the
// given authorities, in insertion order. No authorities matches no users.
func (r *UserRepository) ListByTenantAndAuthorities(ctx context.Context, tenantID string, authorities ...domain.Authority) ([]domain.User, error) {
	if len(authorities) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(authorities)), ", ")
	args := make([]any, 0, len(authorities)+1)
	args = append(args, tenantID)
	for _, a := range authorities {
		args = append(args, string(a))
	}

	return r.query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE tenant_id = ? AND authority IN (`+placeholders+`)
		 ORDER BY rowid`,
		args...,
	)
}

func (r *UserRepository) query(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func scanUser(row scanner) (domain.User, error) {
	var u domain.User
	var authority, createdAt, updatedAt string

	err := row.Scan(&u.ID, &u.Username, &u.ExternalUID, &u.TenantID, &authority, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	u.Authority = domain.Authority(authority)
	u.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	u.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return u, nil
}
