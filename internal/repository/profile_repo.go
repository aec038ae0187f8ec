package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
)

// ProfileRepository persists profiles and their saved locations.
type ProfileRepository interface {
	GetByAccount(accountID uuid.UUID) (*models.Profile, error)
	Update(profileID uuid.UUID, updates map[string]interface{}) error
	CreateLocation(loc *models.SavedLocation) error
	ListLocations(profileID uuid.UUID) ([]models.SavedLocation, error)
	DeleteLocation(profileID, locationID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository constructs a gorm-backed ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByAccount(accountID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "account_id = ?", accountID).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(profileID uuid.UUID, updates map[string]interface{}) error {
	err := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
	return translate(err)
}

func (r *profileRepository) CreateLocation(loc *models.SavedLocation) error {
	return translate(r.db.Create(loc).Error)
}

func (r *profileRepository) ListLocations(profileID uuid.UUID) ([]models.SavedLocation, error) {
	var locations []models.SavedLocation
	if err := r.db.Where("profile_id = ?", profileID).Order("created_at").Find(&locations).Error; err != nil {
		return nil, translate(err)
	}
	return locations, nil
}

func (r *profileRepository) DeleteLocation(profileID, locationID uuid.UUID) error {
	result := r.db.Delete(&models.SavedLocation{}, "id = ? AND profile_id = ?", locationID, profileID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("saved location not found")
	}
	return nil
}
