package migration

import (
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager creates the Postgres-specific indexes that the
// dashboard's listing and filtering queries lean on. None of these are
// required for correctness, so they live apart from the base migration.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes builds composite and partial indexes for the
// hot queries: per-user statements ordered by time, type-filtered
// transaction listings, and the report history views.
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		stmt string
	}{
		{
			// Per-user statement pages, newest first.
			"idx_transactions_user_timestamp",
			`CREATE INDEX IF NOT EXISTS idx_transactions_user_timestamp
			 ON transactions (user_id, timestamp DESC)`,
		},
		{
			// Credit/debit filter on the transactions tab.
			"idx_transactions_user_type",
			`CREATE INDEX IF NOT EXISTS idx_transactions_user_type
			 ON transactions (user_id, type)`,
		},
		{
			// Most listings exclude failed rows, so a partial index on
			// completed ones keeps it small.
			"idx_transactions_completed",
			`CREATE INDEX IF NOT EXISTS idx_transactions_completed
			 ON transactions (user_id, timestamp)
			 WHERE status = 'completed'`,
		},
		{
			// Ledger rows arrive in time order, which is the BRIN sweet spot.
			"idx_transactions_timestamp_brin",
			`CREATE INDEX IF NOT EXISTS idx_transactions_timestamp_brin
			 ON transactions USING BRIN (timestamp)
			 WITH (pages_per_range = 32)`,
		},
		{
			// Dashboards polling in-flight generations, and the conditional
			// status update that completes them.
			"idx_report_histories_generating",
			`CREATE INDEX IF NOT EXISTS idx_report_histories_generating
			 ON report_histories (generated_at)
			 WHERE status = 'generating'`,
		},
		{
			// Admin history listing, newest first.
			"idx_report_histories_generated_at",
			`CREATE INDEX IF NOT EXISTS idx_report_histories_generated_at
			 ON report_histories (generated_at DESC)`,
		},
		{
			// Per-product sales reporting.
			"idx_report_histories_report_type",
			`CREATE INDEX IF NOT EXISTS idx_report_histories_report_type
			 ON report_histories (report_type)`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx.stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks adjusts table storage parameters. Failures here
// are logged and ignored; the tweaks need table ownership that a
// restricted deployment role may not have.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []struct {
		name string
		stmt string
	}{
		{
			// Leave room in transaction pages for the status update that
			// follows the insert.
			"transactions fillfactor",
			`ALTER TABLE transactions SET (fillfactor = 90)`,
		},
		{
			// user_id is heavily skewed toward a few busy wallets; wider
			// statistics keep the planner honest.
			"user_id statistics target",
			`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
		},
	}

	for _, tweak := range tweaks {
		if err := m.db.Exec(tweak.stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
