package otel_test

import (
	"testing"

	adapter "github.com/neomorfeo/tenantadmin/internal/adapter/otel"
)

func TestOpenDB_InvalidPath(t *testing.T) {
	if _, err := adapter.OpenDB("/nonexistent/path/db.sqlite"); err == nil {
		t.Fatal("expected error for invalid database path")
	}
}

func TestOpenDB_TempFile(t *testing.T) {
	db, err := adapter.OpenDB(t.TempDir() + "/otel.db")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("reading journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}
