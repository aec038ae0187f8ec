package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/utils"
)

// WorkerRepository persists worker records.
type WorkerRepository interface {
	// CreateWithRole inserts the worker record and flips the owning
	// account's role to Worker in one transaction. A crash cannot leave a
	// Worker-tagged account without a record, or the reverse.
	CreateWithRole(worker *models.WorkerRecord) error
	GetByAccount(accountID uuid.UUID) (*models.WorkerRecord, error)
	GetByID(id uuid.UUID) (*models.WorkerRecord, error)
	Update(workerID uuid.UUID, updates map[string]interface{}) error
	ListByStatus(status models.VerificationStatus, pg utils.Pagination) ([]models.WorkerRecord, int64, error)
}

type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository constructs a gorm-backed WorkerRepository.
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) CreateWithRole(worker *models.WorkerRecord) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(worker).Error; err != nil {
			return err
		}
		return tx.Model(&models.Account{}).
			Where("id = ?", worker.AccountID).
			Update("role", models.RoleWorker).Error
	})
	return translate(err)
}

func (r *workerRepository) GetByAccount(accountID uuid.UUID) (*models.WorkerRecord, error) {
	var worker models.WorkerRecord
	if err := r.db.First(&worker, "account_id = ?", accountID).Error; err != nil {
		return nil, translate(err)
	}
	return &worker, nil
}

func (r *workerRepository) GetByID(id uuid.UUID) (*models.WorkerRecord, error) {
	var worker models.WorkerRecord
	if err := r.db.First(&worker, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &worker, nil
}

func (r *workerRepository) Update(workerID uuid.UUID, updates map[string]interface{}) error {
	err := r.db.Model(&models.WorkerRecord{}).Where("id = ?", workerID).Updates(updates).Error
	return translate(err)
}

func (r *workerRepository) ListByStatus(status models.VerificationStatus, pg utils.Pagination) ([]models.WorkerRecord, int64, error) {
	query := r.db.Model(&models.WorkerRecord{})
	if status != "" {
		query = query.Where("verification_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var workers []models.WorkerRecord
	if err := query.Order("created_at DESC").Limit(pg.Limit).Offset(pg.Offset).Find(&workers).Error; err != nil {
		return nil, 0, translate(err)
	}
	return workers, total, nil
}
