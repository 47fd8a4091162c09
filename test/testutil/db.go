// test/testutil/db.go
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trialdesk/participant-manager/api/db"
)

// SetupSQLiteTestDB creates an in-memory SQLite database with the full
// schema migrated, so service and controller tests run without Postgres.
func SetupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to SQLite test database: %v", err)
	}

	// Every sqlite :memory: connection is its own database; pin the pool to
	// one connection so concurrent workers share the schema.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	return gdb
}
