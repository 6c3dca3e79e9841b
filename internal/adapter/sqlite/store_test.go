package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neomorfeo/tenantadmin/internal/adapter/sqlite"
	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// newTestStore creates an in-memory SQLite store for testing.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSaveTenant(t *testing.T, repo *sqlite.TenantRepository, tenant domain.Tenant) domain.Tenant {
	t.Helper()
	saved, err := repo.Save(context.Background(), tenant)
	if err != nil {
		t.Fatalf("mustSaveTenant failed: %v", err)
	}
	return saved
}

func mustSaveUser(t *testing.T, repo *sqlite.UserRepository, user domain.User) domain.User {
	t.Helper()
	saved, err := repo.Save(context.Background(), user)
	if err != nil {
		t.Fatalf("mustSaveUser failed: %v", err)
	}
	return saved
}

func TestNew_InvalidPath(t *testing.T) {
	if _, err := sqlite.New("/nonexistent/path/db.sqlite"); err == nil {
		t.Fatal("expected error for invalid database path")
	}
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	dbPath := t.TempDir() + "/twice.db"

	first, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	mustSaveTenant(t, first.Tenants(), domain.NewTenant("t-1", "Acme"))
	first.Close()

	second, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	if _, err := second.Tenants().GetByID(context.Background(), "t-1"); err != nil {
		t.Errorf("tenant lost across reopen: %v", err)
	}
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Transactor().RunInTx(ctx, func(ctx context.Context) error {
		if _, err := store.Tenants().Save(ctx, domain.NewTenant("t-1", "Acme")); err != nil {
			return err
		}
		_, err := store.Users().Save(ctx, domain.NewUser("u-1", "bob", "ext-1", "t-1", domain.AuthorityTenantAdmin))
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx failed: %v", err)
	}

	if _, err := store.Tenants().GetByID(ctx, "t-1"); err != nil {
		t.Errorf("tenant not committed: %v", err)
	}
	if _, err := store.Users().GetByID(ctx, "u-1"); err != nil {
		t.Errorf("user not committed: %v", err)
	}
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transactor().RunInTx(ctx, func(ctx context.Context) error {
		if _, err := store.Tenants().Save(ctx, domain.NewTenant("t-1", "Acme")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := store.Tenants().GetByID(ctx, "t-1"); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("expected ErrTenantNotFound after rollback, got %v", err)
	}
}

func TestTransactor_NestedCallsJoinOuter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transactor().RunInTx(ctx, func(ctx context.Context) error {
		inner := store.Transactor().RunInTx(ctx, func(ctx context.Context) error {
			_, err := store.Tenants().Save(ctx, domain.NewTenant("t-1", "Acme"))
			return err
		})
		if inner != nil {
			return inner
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// The inner write belonged to the outer transaction and was rolled back with it.
	if _, err := store.Tenants().GetByID(ctx, "t-1"); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("expected ErrTenantNotFound after rollback, got %v", err)
	}
}
