package repository

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
)

// AccountRepository persists accounts and their mandatory profiles.
type AccountRepository interface {
	// CreateWithProfile inserts the account and an empty profile in one
	// transaction. The unique handle is derived from baseHandle inside the
	// same transaction so the collision search cannot race a concurrent
	// registration.
	CreateWithProfile(account *models.Account, baseHandle string) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByPhone(phone string) (bool, error)
	Delete(id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository constructs a gorm-backed AccountRepository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateWithProfile(account *models.Account, baseHandle string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		handle := baseHandle
		for counter := 1; ; counter++ {
			var count int64
			if err := tx.Model(&models.Account{}).Where("handle = ?", handle).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			handle = fmt.Sprintf("%s%d", baseHandle, counter)
		}
		account.Handle = handle

		if err := tx.Create(account).Error; err != nil {
			return err
		}

		profile := &models.Profile{
			AccountID:         account.ID,
			PreferredRadiusKM: models.DefaultSearchRadiusKM,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		account.Profile = profile

		return nil
	})
	return translate(err)
}

func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *accountRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *accountRepository) ExistsByPhone(phone string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Delete removes the account row. Owned records cascade through the
// database constraints; verified_by back-references elsewhere are set to
// NULL by the same constraints.
func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Account{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("account not found")
	}
	return nil
}
