package database

import (
	"fmt"
	"testing"
	"time"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/model"
	timeprovider "github.com/astrodash/astro-api/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager wires a Manager against the throwaway database used by
// repository integration tests. The schema is rebuilt per test run, so
// nothing here may ever point at a real deployment.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager reads TEST_DB_* variables for the connection and falls
// back to a local Postgres with stock credentials.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "postgres",
		Host:            envOr("TEST_DB_HOST", "localhost"),
		Port:            envInt("TEST_DB_PORT", 5432),
		Username:        envOr("TEST_DB_USERNAME", "postgres"),
		Password:        envOr("TEST_DB_PASSWORD", "postgres"),
		Database:        envOr("TEST_DB_DATABASE", "astro_api_test"),
		SSLMode:         envOr("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1, // fail fast when no test database is running
		RetryDelay:      1,
	}

	manager := NewManager(config, logger, timeProvider)

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect opens the test database connection, failing the test when the
// database is unreachable.
func (m *TestDBManager) Connect(t *testing.T) error {
	t.Helper()

	if _, err := m.Manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
		return err
	}
	return nil
}

// Close releases the test database connection.
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB rebuilds the wallet and report schema from scratch. The
// unique reference index matters even here: duplicate-reference tests
// rely on the constraint, not on application checks.
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.ReportHistory{},
	); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	if err := createTestIndexes(db); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
}

// dropAllTables drops all tables in the test database
func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// createTestIndexes creates basic indexes for testing
func createTestIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_reference_unique ON transactions (reference)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_report_histories_user_id ON report_histories (user_id)").Error; err != nil {
		return err
	}

	return nil
}

// TruncateAllTables truncates all tables in the test database
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'TRUNCATE TABLE ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestUser inserts an active user with the given wallet balance in
// paise.
func (m *TestDBManager) CreateTestUser(t *testing.T, id uint64, balance int64) {
	t.Helper()

	db := m.Manager.DB()

	user := model.User{
		ID:               id,
		Name:             fmt.Sprintf("Test User %d", id),
		Email:            fmt.Sprintf("test%d@example.com", id),
		Package:          "Basic",
		Status:           "Active",
		WalletBalance:    balance,
		TransactionCount: 0,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}
