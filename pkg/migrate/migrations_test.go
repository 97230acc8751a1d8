package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/migrate"
)

func TestMigrationDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migration dir invalid: %v", err)
	}
}

func TestOrdersMigrationSeedsTheSequence(t *testing.T) {
	content := readMigration(t, "*_create_orders.sql")

	checks := []string{
		"CREATE TABLE order_sequence",
		"INSERT INTO order_sequence (name, value) VALUES ('order', 0)",
		"CREATE TABLE orders",
		"CREATE TABLE order_items",
		"CREATE INDEX idx_orders_placed_on",
		"CREATE INDEX idx_orders_salesperson",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCatalogMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_catalog.sql")

	checks := []string{
		"CREATE TABLE products",
		"reserved_stock",
		"CREATE TABLE customers",
		"CREATE TABLE salespersons",
		"CREATE TABLE companies",
		"free_shipping_minimum",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matches %q", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
