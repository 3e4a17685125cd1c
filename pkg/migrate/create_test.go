package migrate_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/nvelasco/cartify-backend/pkg/migrate"
)

func TestCreateSQLMigrationWritesGooseSkeleton(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Cart Discounts!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}

	name := filepath.Base(path)
	if !regexp.MustCompile(`^\d{14}_add_cart_discounts\.sql$`).MatchString(name) {
		t.Fatalf("unexpected migration filename %q", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(string(data), marker) {
			t.Errorf("missing marker %q", marker)
		}
	}

	if err := migrate.ValidateDir(dir); err != nil {
		t.Fatalf("fresh migration failed validation: %v", err)
	}
}

func TestCreateSQLMigrationRejectsUnusableNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "!!!"} {
		if _, err := migrate.CreateSQLMigration(dir, name); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not_a_migration.sql")
	if err := os.WriteFile(file, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatalf("expected validation failure for %q", filepath.Base(file))
	}
}
