package db_test

import (
	"context"
	"testing"

	dbfiles "github.com/hauts/exhibition/db"
	dbpkg "github.com/hauts/exhibition/internal/db"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfiles.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// posts table must exist
	var n int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		t.Fatalf("posts table missing after migrate: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty posts table, got %d rows", n)
	}

	// migrations are recorded
	var applied int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("schema_migrations missing: %v", err)
	}
	if applied == 0 {
		t.Fatalf("expected recorded migrations")
	}

	// running again is a no-op
	if err := dbpkg.Migrate(ctx, d, dbfiles.Migrations); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}
	var applied2 int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied2); err != nil {
		t.Fatalf("schema_migrations query: %v", err)
	}
	if applied2 != applied {
		t.Fatalf("expected migration count unchanged, got %d then %d", applied, applied2)
	}
}
