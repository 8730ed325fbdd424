package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS vendor_submission_log (
		id UUID PRIMARY KEY,
		vendor_name TEXT NOT NULL,
		vendor_email TEXT NOT NULL,
		vendor_contact_number TEXT NOT NULL,
		service_offering TEXT NOT NULL,
		vendor_country TEXT NOT NULL,
		request_sys_id VARCHAR(64) NOT NULL,
		request_number VARCHAR(64),
		req_item_sys_id VARCHAR(64),
		attachment_uploaded BOOLEAN NOT NULL DEFAULT FALSE,
		logged_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vendor_submission_log_request_number ON vendor_submission_log (request_number);`,
	`CREATE INDEX IF NOT EXISTS idx_vendor_submission_log_logged_at ON vendor_submission_log (logged_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
