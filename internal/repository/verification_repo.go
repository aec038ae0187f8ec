package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
)

// VerificationRepository applies verification transitions. The status write
// and the admin counter increment commit together or not at all.
type VerificationRepository interface {
	ApplyToWorker(workerID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error
	ApplyToDocument(documentID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository constructs a gorm-backed VerificationRepository.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) ApplyToWorker(workerID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	return r.apply(&models.WorkerRecord{}, workerID, updates, adminAccountID)
}

func (r *verificationRepository) ApplyToDocument(documentID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	return r.apply(&models.DocumentRecord{}, documentID, updates, adminAccountID)
}

// apply is the single transition writer shared by both verifiable record
// kinds.
func (r *verificationRepository) apply(model interface{}, recordID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(model).Where("id = ?", recordID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("record not found")
		}

		counter := tx.Model(&models.AdminRecord{}).
			Where("account_id = ?", adminAccountID).
			Update("total_verifications", gorm.Expr("total_verifications + 1"))
		if counter.Error != nil {
			return counter.Error
		}
		if counter.RowsAffected == 0 {
			return apperrors.NotFound("admin record not found")
		}
		return nil
	})
	return translate(err)
}
