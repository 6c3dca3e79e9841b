package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// Compile-time check: TenantRepository implements domain.TenantRepository.
var _ domain.TenantRepository = (*TenantRepository)(nil)

// TenantRepository implements domain.TenantRepository using SQLite.
type TenantRepository struct {
	db *sql.DB
}

const tenantColumns = `id, name, created_at, updated_at`

// Save inserts the tenant, or updates its name when the id already exists.
// CreatedAt is kept from the first insert; the stored row is returned.
func (r *TenantRepository) Save(ctx context.Context, t domain.Tenant) (domain.Tenant, error) {
	q := conn(ctx, r.db)
	now := time.Now().UTC().Format(timeFormat)

	_, err := q.ExecContext(ctx,
		`INSERT INTO tenants (id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at`,
		t.ID, t.Name, now, now,
	)
	if err != nil {
		if isUniqueViolation(err, "tenants.name") {
			return domain.Tenant{}, &domain.DuplicateNameError{Name: t.Name}
		}
		return domain.Tenant{}, fmt.Errorf("saving tenant: %w", err)
	}

	return r.GetByID(ctx, t.ID)
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (domain.Tenant, error) {
	return scanTenant(conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = ?`, id,
	))
}

func (r *TenantRepository) GetByName(ctx context.Context, name string) (domain.Tenant, error) {
	return scanTenant(conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE name = ?`, name,
	))
}

// Delete removes the tenant row. Deleting a missing tenant is not an error.
func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	if _, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}
	return nil
}

// List returns every tenant in insertion order.
func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

func scanTenant(row scanner) (domain.Tenant, error) {
	var t domain.Tenant
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Name, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Tenant{}, domain.ErrTenantNotFound
		}
		return domain.Tenant{}, fmt.Errorf("scanning tenant: %w", err)
	}

	t.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	t.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return t, nil
}
