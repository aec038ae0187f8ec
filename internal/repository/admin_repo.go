package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/models"
)

// AdminRepository reads admin capability records.
type AdminRepository interface {
	GetByAccount(accountID uuid.UUID) (*models.AdminRecord, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository constructs a gorm-backed AdminRepository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByAccount(accountID uuid.UUID) (*models.AdminRecord, error) {
	var admin models.AdminRecord
	if err := r.db.First(&admin, "account_id = ?", accountID).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}
