package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/models"
)

// DocumentRepository persists worker identity documents.
type DocumentRepository interface {
	Create(doc *models.DocumentRecord) error
	GetByID(id uuid.UUID) (*models.DocumentRecord, error)
	ListByWorker(workerID uuid.UUID) ([]models.DocumentRecord, error)
	Exists(workerID uuid.UUID, docType models.DocumentType, number string) (bool, error)
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository constructs a gorm-backed DocumentRepository.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *models.DocumentRecord) error {
	return translate(r.db.Create(doc).Error)
}

func (r *documentRepository) GetByID(id uuid.UUID) (*models.DocumentRecord, error) {
	var doc models.DocumentRecord
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func (r *documentRepository) ListByWorker(workerID uuid.UUID) ([]models.DocumentRecord, error) {
	var docs []models.DocumentRecord
	if err := r.db.Where("worker_id = ?", workerID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, translate(err)
	}
	return docs, nil
}

func (r *documentRepository) Exists(workerID uuid.UUID, docType models.DocumentType, number string) (bool, error) {
	var count int64
	err := r.db.Model(&models.DocumentRecord{}).
		Where("worker_id = ? AND document_type = ? AND document_number = ?", workerID, docType, number).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
