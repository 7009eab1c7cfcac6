package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is bumped whenever MigrateAll gains a new step.
// 1.0.1 added the metadata column on report history rows.
const CurrentSchemaVersion = "1.0.1"

// MigrationManager brings the schema up to CurrentSchemaVersion at boot.
// Migrations run before the API accepts traffic, so a failed step aborts
// startup rather than serving against a half-migrated schema.
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a manager that stamps versions with the
// system clock.
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// NewMigrationManagerWithTimeProvider creates a manager whose version
// rows are stamped through the shared time provider.
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll runs every step needed to reach CurrentSchemaVersion and is
// a no-op when the database is already there.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"auto-migrate models", m.autoMigrateModels},
		{"versioned migrations", func() error { return m.runVersionedMigrations(currentVersion) }},
		{"basic indexes", m.createIndexes},
		{"advanced indexes", m.advancedIndexMgr.CreateAdvancedIndexes},
		{"performance tweaks", m.advancedIndexMgr.CreatePerformanceTweaks},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":            step.name,
				"error":           err.Error(),
				"current_version": currentVersion,
				"target_version":  CurrentSchemaVersion,
			})
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		return fmt.Errorf("record schema version %s: %w", CurrentSchemaVersion, err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied schema version, or
// an empty string for a fresh database.
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.ReportHistory{},
	)
}

// runVersionedMigrations applies the hand-written steps between
// currentVersion and the target. AutoMigrate handles additive column
// changes; anything touching existing rows lives here.
func (m *MigrationManager) runVersionedMigrations(currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		// Fresh database, AutoMigrate has already built the full schema.
		return nil
	case "1.0.0":
		return m.migrateFrom1_0_0To1_0_1()
	}
	return nil
}

// migrateFrom1_0_0To1_0_1 backfills the metadata column AutoMigrate just
// added; rows from failed generations before 1.0.1 carried no metadata.
func (m *MigrationManager) migrateFrom1_0_0To1_0_1() error {
	m.logger.Info("Migrating from v1.0.0 to v1.0.1", nil)

	return m.db.Exec(`
		UPDATE report_histories SET metadata = '{}'::jsonb WHERE metadata IS NULL
	`).Error
}

// createIndexes creates the indexes correctness depends on. The unique
// reference index is what turns a replayed ledger write into
// ErrDuplicateTransaction instead of a double-applied balance change.
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_reference_unique ON transactions (reference)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_report_histories_user_id ON report_histories (user_id)",
	} {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
