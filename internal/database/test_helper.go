package database

import (
	"fmt"
	"testing"
	"time"

	"purchase-report/internal/config"
	"purchase-report/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: gets its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestPurchaseRecord inserts a record with the given fields
func CreateTestPurchaseRecord(t *testing.T, db *DB, purchaser, source, recordType, price string, at time.Time) *models.PurchaseRecord {
	t.Helper()

	record := &models.PurchaseRecord{
		PurchaserName: purchaser,
		Source:        source,
		Type:          recordType,
		TotalPrice:    decimal.RequireFromString(price),
		PurchaseTime:  at.UTC(),
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test purchase record: %v", err)
	}

	return record
}

// CleanupTestDB empties the tables between tests that share a database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"purchase_records",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
