package mysql

import (
	"testing"

	"tender-crm-backend/internal/domain/catalog"
	"tender-crm-backend/internal/domain/client"
	"tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/tender"
	"tender-crm-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the domain models.
// The models avoid dialect-specific column types, so no sqlite shadow structs are needed.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one connection: every ":memory:" connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&financial.Request{},
		&tender.Tender{},
		&client.Client{},
		&user.User{},
		&catalog.OEM{},
		&catalog.Product{},
		&catalog.Department{},
		&catalog.Designation{},
		&catalog.BidTemplate{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
