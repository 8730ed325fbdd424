package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Append inserts one trail row. Rows are never updated.
func (r *SubmissionRepository) Append(ctx context.Context, record model.SubmissionRecord) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO vendor_submission_log (
			id,
			vendor_name,
			vendor_email,
			vendor_contact_number,
			service_offering,
			vendor_country,
			request_sys_id,
			request_number,
			req_item_sys_id,
			attachment_uploaded,
			logged_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.SubmissionID,
		record.VendorName,
		record.VendorEmail,
		record.VendorContactNumber,
		record.ServiceOffering,
		record.VendorCountry,
		record.RequestSysID,
		record.RequestNumber,
		record.ReqItemSysID,
		record.AttachmentUploaded,
		record.LoggedAt,
	).Error
}
